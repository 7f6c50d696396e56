package usecase

import (
	"context"

	"github.com/taskfuse/site-api/internal/infra/queue"
)

// SlotStorage is the persistence port for named content slots. Load
// reports found=false when the slot has never been written; decode
// failures are the store's problem, not the storage's.
type SlotStorage interface {
	Load(ctx context.Context, name string) (raw []byte, found bool, err error)
	Save(ctx context.Context, name string, raw []byte) error
}

type QueueProducerInterface interface {
	PublishSubmission(ctx context.Context, payload queue.SubmissionPayload) error
}
