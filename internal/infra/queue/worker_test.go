package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubWebhook struct {
	calls int
	url   string
	err   error
}

func (s *stubWebhook) Deliver(ctx context.Context, url string, payload SubmissionPayload) error {
	s.calls++
	s.url = url
	return s.err
}

type stubMail struct {
	calls int
	to    string
	err   error
}

func (s *stubMail) SendSubmissionNotice(to string, payload SubmissionPayload) error {
	s.calls++
	s.to = to
	return s.err
}

type stubSettings struct {
	webhookURL   string
	contactEmail string
}

func (s stubSettings) WebhookURL() string   { return s.webhookURL }
func (s stubSettings) ContactEmail() string { return s.contactEmail }

func TestProcessMessageDeliversAndNotifies(t *testing.T) {
	webhook := &stubWebhook{}
	mail := &stubMail{}
	w := NewWorker(nil, webhook, mail, stubSettings{
		webhookURL:   "https://hooks.example/contact",
		contactEmail: "owner@taskfuse.com",
	})

	err := w.processMessage(context.Background(), SubmissionPayload{SubmissionID: "s1"})

	assert.NoError(t, err)
	assert.Equal(t, 1, webhook.calls)
	assert.Equal(t, "https://hooks.example/contact", webhook.url)
	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, "owner@taskfuse.com", mail.to)
}

func TestProcessMessageNoWebhookConfigured(t *testing.T) {
	webhook := &stubWebhook{}
	w := NewWorker(nil, webhook, &stubMail{}, stubSettings{})

	// Acked (nil) so the message does not loop through the DLQ forever.
	err := w.processMessage(context.Background(), SubmissionPayload{SubmissionID: "s1"})

	assert.NoError(t, err)
	assert.Equal(t, 0, webhook.calls)
}

func TestProcessMessageWebhookFailurePropagates(t *testing.T) {
	webhook := &stubWebhook{err: errors.New("503 from n8n")}
	mail := &stubMail{}
	w := NewWorker(nil, webhook, mail, stubSettings{webhookURL: "https://hooks.example"})

	err := w.processMessage(context.Background(), SubmissionPayload{SubmissionID: "s1"})

	assert.Error(t, err)
	assert.Equal(t, 0, mail.calls, "no notice for an undelivered submission")
}

func TestProcessMessageMailFailureIsNotFatal(t *testing.T) {
	webhook := &stubWebhook{}
	mail := &stubMail{err: errors.New("smtp down")}
	w := NewWorker(nil, webhook, mail, stubSettings{
		webhookURL:   "https://hooks.example",
		contactEmail: "owner@taskfuse.com",
	})

	err := w.processMessage(context.Background(), SubmissionPayload{SubmissionID: "s1"})
	assert.NoError(t, err)
}

func TestProcessMessageWithoutMailSender(t *testing.T) {
	webhook := &stubWebhook{}
	w := NewWorker(nil, webhook, nil, stubSettings{webhookURL: "https://hooks.example"})

	err := w.processMessage(context.Background(), SubmissionPayload{SubmissionID: "s1"})
	assert.NoError(t, err)
	assert.Equal(t, 1, webhook.calls)
}
