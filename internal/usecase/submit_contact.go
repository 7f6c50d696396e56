package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/taskfuse/site-api/internal/entity"
	"github.com/taskfuse/site-api/internal/infra/queue"
	"github.com/taskfuse/site-api/pkg/logger"
)

// SubmitContactUseCase accepts a contact-form request and hands it to the
// delivery queue. Delivery to the webhook happens asynchronously in the
// worker; the caller only learns that the submission was accepted.
type SubmitContactUseCase struct {
	Queue QueueProducerInterface
}

func NewSubmitContactUseCase(producer QueueProducerInterface) *SubmitContactUseCase {
	return &SubmitContactUseCase{Queue: producer}
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, input ContactInput) (*entity.ContactSubmission, error) {
	if errs := ValidateContactInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "INVALID_SUBMISSION", Message: errs[0].Error()}
	}

	sub := entity.NewContactSubmission(
		input.FullName,
		input.BusinessName,
		input.Industry,
		input.Phone,
		input.Help,
	)

	payload := queue.SubmissionPayload{
		SubmissionID: sub.ID,
		FullName:     sub.FullName,
		BusinessName: sub.BusinessName,
		Industry:     sub.Industry,
		Phone:        sub.Phone,
		Help:         sub.Help,
		ReceivedAt:   sub.ReceivedAt.Format(time.RFC3339),
	}

	if err := uc.Queue.PublishSubmission(ctx, payload); err != nil {
		return nil, &TechnicalError{
			Code:    "QUEUE_PUBLISH",
			Message: fmt.Sprintf("failed to queue submission: %v", err),
		}
	}

	logger.Sugar.Infow("contact submission accepted",
		"submission_id", sub.ID, "business", sub.BusinessName)

	return sub, nil
}
