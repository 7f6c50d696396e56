package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/taskfuse/site-api/internal/infra/queue"
)

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishSubmission(ctx context.Context, payload queue.SubmissionPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func validContactInput() ContactInput {
	return ContactInput{
		FullName:     "Asha Patel",
		BusinessName: "Patel Traders",
		Industry:     "Retail",
		Phone:        "+91 98765 43210",
		Help:         "We drown in manual order entry.",
	}
}

func TestSubmitContactPublishesPayload(t *testing.T) {
	ctx := context.Background()
	mockQueue := new(MockQueueProducer)
	mockQueue.On("PublishSubmission", ctx, mock.MatchedBy(func(p queue.SubmissionPayload) bool {
		return p.FullName == "Asha Patel" &&
			p.BusinessName == "Patel Traders" &&
			p.Industry == "Retail" &&
			p.SubmissionID != "" &&
			p.ReceivedAt != ""
	})).Return(nil)

	uc := NewSubmitContactUseCase(mockQueue)

	sub, err := uc.Execute(ctx, validContactInput())
	assert.NoError(t, err)
	assert.NotNil(t, sub)
	assert.NotEmpty(t, sub.ID)

	mockQueue.AssertExpectations(t)
}

func TestSubmitContactRejectsInvalidInput(t *testing.T) {
	mockQueue := new(MockQueueProducer)
	uc := NewSubmitContactUseCase(mockQueue)

	input := validContactInput()
	input.Phone = "not a phone"

	sub, err := uc.Execute(context.Background(), input)
	assert.Nil(t, sub)
	assert.True(t, IsDomainError(err))

	mockQueue.AssertNotCalled(t, "PublishSubmission", mock.Anything, mock.Anything)
}

func TestSubmitContactRequiresAllFields(t *testing.T) {
	mockQueue := new(MockQueueProducer)
	uc := NewSubmitContactUseCase(mockQueue)

	for _, mutate := range []func(*ContactInput){
		func(i *ContactInput) { i.FullName = "" },
		func(i *ContactInput) { i.BusinessName = "   " },
		func(i *ContactInput) { i.Industry = "" },
		func(i *ContactInput) { i.Phone = "" },
		func(i *ContactInput) { i.Help = "" },
	} {
		input := validContactInput()
		mutate(&input)

		_, err := uc.Execute(context.Background(), input)
		assert.True(t, IsDomainError(err))
	}
}

func TestSubmitContactQueueFailure(t *testing.T) {
	ctx := context.Background()
	mockQueue := new(MockQueueProducer)
	mockQueue.On("PublishSubmission", ctx, mock.Anything).Return(errors.New("broker down"))

	uc := NewSubmitContactUseCase(mockQueue)

	sub, err := uc.Execute(ctx, validContactInput())
	assert.Nil(t, sub)
	assert.True(t, IsTechnicalError(err))
}
