package webhook

import "github.com/taskfuse/site-api/internal/infra/queue"

// OutboundPayload is the body the webhook receives. Field names match
// what the contact form has always posted, so existing n8n flows keep
// working unchanged.
type OutboundPayload struct {
	FullName     string `json:"fullName"`
	BusinessName string `json:"businessName"`
	Industry     string `json:"industry"`
	Phone        string `json:"phone"`
	Help         string `json:"help"`
}

func toOutbound(p queue.SubmissionPayload) OutboundPayload {
	return OutboundPayload{
		FullName:     p.FullName,
		BusinessName: p.BusinessName,
		Industry:     p.Industry,
		Phone:        p.Phone,
		Help:         p.Help,
	}
}
