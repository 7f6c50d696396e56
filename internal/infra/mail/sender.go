package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/taskfuse/site-api/internal/infra/queue"
)

const noticeTemplate = `<h2>New demo request</h2>
<p><strong>Name:</strong> {{.FullName}}</p>
<p><strong>Business:</strong> {{.BusinessName}}</p>
<p><strong>Industry:</strong> {{.Industry}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Message:</strong></p>
<p>{{.Help}}</p>
<p><small>Received {{.ReceivedAt}}</small></p>
`

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

func (s *EmailSender) SendSubmissionNotice(to string, payload queue.SubmissionPayload) error {
	data := SubmissionNoticeData{
		FullName:     payload.FullName,
		BusinessName: payload.BusinessName,
		Industry:     payload.Industry,
		Phone:        payload.Phone,
		Help:         payload.Help,
		ReceivedAt:   payload.ReceivedAt,
	}

	t, err := template.New("notice").Parse(noticeTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@taskfuse.com")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("New demo request from %s", payload.BusinessName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
