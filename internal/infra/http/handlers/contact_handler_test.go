package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/taskfuse/site-api/internal/infra/queue"
	"github.com/taskfuse/site-api/internal/usecase"
)

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishSubmission(ctx context.Context, payload queue.SubmissionPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func TestContactSubmitAccepted(t *testing.T) {
	mockQueue := new(MockQueueProducer)
	mockQueue.On("PublishSubmission", mock.Anything, mock.Anything).Return(nil)

	h := NewContactHandler(usecase.NewSubmitContactUseCase(mockQueue))

	body := `{
		"fullName": "Asha Patel",
		"businessName": "Patel Traders",
		"industry": "Retail",
		"phone": "+91 98765 43210",
		"help": "Automate our order intake."
	}`

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, httptest.NewRequest("POST", "/api/contact", strings.NewReader(body)))

	assert.Equal(t, http.StatusAccepted, rec.Code)

	var resp ContactResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.SubmissionID)

	mockQueue.AssertExpectations(t)
}

func TestContactSubmitInvalidFieldIs400(t *testing.T) {
	mockQueue := new(MockQueueProducer)
	h := NewContactHandler(usecase.NewSubmitContactUseCase(mockQueue))

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, httptest.NewRequest("POST", "/api/contact",
		strings.NewReader(`{"fullName":"Asha"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ContactResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)

	mockQueue.AssertNotCalled(t, "PublishSubmission", mock.Anything, mock.Anything)
}

func TestContactSubmitBadJSONIs400(t *testing.T) {
	h := NewContactHandler(usecase.NewSubmitContactUseCase(new(MockQueueProducer)))

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{broken`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactSubmitRateLimited(t *testing.T) {
	mockQueue := new(MockQueueProducer)
	mockQueue.On("PublishSubmission", mock.Anything, mock.Anything).Return(nil)

	h := NewContactHandler(usecase.NewSubmitContactUseCase(mockQueue))

	body := `{
		"fullName": "Asha Patel",
		"businessName": "Patel Traders",
		"industry": "Retail",
		"phone": "+91 98765 43210",
		"help": "Automate our order intake."
	}`

	var last int
	for i := 0; i < 11; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
		req.RemoteAddr = "10.0.0.1:1234"
		h.HandleSubmit(rec, req)
		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
