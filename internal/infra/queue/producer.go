package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// SubmissionPayload is the contact-form message carried through the queue.
// Field names mirror the public form so the webhook receives the payload
// the site has always sent.
type SubmissionPayload struct {
	SubmissionID string `json:"submission_id"`
	FullName     string `json:"fullName"`
	BusinessName string `json:"businessName"`
	Industry     string `json:"industry"`
	Phone        string `json:"phone"`
	Help         string `json:"help"`
	ReceivedAt   string `json:"received_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishSubmission(ctx context.Context, payload SubmissionPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %v", err)
	}

	return nil
}
