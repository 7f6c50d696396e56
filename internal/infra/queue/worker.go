package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/taskfuse/site-api/pkg/logger"
)

// WebhookSender delivers an accepted submission to an external endpoint.
type WebhookSender interface {
	Deliver(ctx context.Context, url string, payload SubmissionPayload) error
}

// NotificationSender emails the site owner about a new submission. Mail is
// best-effort; webhook delivery is the contract.
type NotificationSender interface {
	SendSubmissionNotice(to string, payload SubmissionPayload) error
}

// DeliverySettings exposes the live settings the worker needs. Backed by
// the content store so admin edits take effect without a restart.
type DeliverySettings interface {
	WebhookURL() string
	ContactEmail() string
}

type Worker struct {
	Channel  *amqp.Channel
	Webhook  WebhookSender
	Mail     NotificationSender
	Settings DeliverySettings
}

func NewWorker(ch *amqp.Channel, webhook WebhookSender, mail NotificationSender, settings DeliverySettings) *Worker {
	return &Worker{
		Channel:  ch,
		Webhook:  webhook,
		Mail:     mail,
		Settings: settings,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		logger.Sugar.Fatalw("failed to register RabbitMQ consumer", "error", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload SubmissionPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				logger.Sugar.Errorw("dropping malformed submission message", "error", err)
				// Malformed message. Reject without requeue so it cannot
				// wedge the queue.
				d.Nack(false, false)
				continue
			}

			if err := w.processMessage(context.Background(), payload); err != nil {
				logger.Sugar.Errorw("webhook delivery failed",
					"submission_id", payload.SubmissionID, "error", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	logger.Sugar.Infow("worker waiting for submissions", "queue", queueName)
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, payload SubmissionPayload) error {
	url := w.Settings.WebhookURL()
	if url == "" {
		// Nothing configured to deliver to. Ack so the message does not
		// bounce between queue and DLQ forever.
		logger.Sugar.Warnw("no webhook URL configured, discarding submission",
			"submission_id", payload.SubmissionID)
		return nil
	}

	if err := w.Webhook.Deliver(ctx, url, payload); err != nil {
		return err
	}

	logger.Sugar.Infow("submission delivered",
		"submission_id", payload.SubmissionID, "webhook", url)

	if w.Mail != nil {
		if to := w.Settings.ContactEmail(); to != "" {
			if err := w.Mail.SendSubmissionNotice(to, payload); err != nil {
				logger.Sugar.Warnw("notification email failed",
					"submission_id", payload.SubmissionID, "error", err)
			}
		}
	}

	return nil
}
