package submissions

import (
	"context"

	"maisonweb/mailer"
	"maisonweb/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockFeedbackStore struct {
	mock.Mock
}

func (m *MockFeedbackStore) CreateFeedback(ctx context.Context, feedback models.Feedback) (*models.Feedback, error) {
	args := m.Called(ctx, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	args := m.Called(ctx, token, remoteIP)
	return args.Error(0)
}

type MockServiceCatalog struct {
	mock.Mock
}

func (m *MockServiceCatalog) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

// RecordingMailer keeps every message in send order and fails the sends
// whose 1-based position is listed in failOn.
type RecordingMailer struct {
	Sent   []mailer.Message
	failOn map[int]error
}

func (m *RecordingMailer) Send(_ context.Context, msg mailer.Message) error {
	m.Sent = append(m.Sent, msg)
	if err, ok := m.failOn[len(m.Sent)]; ok {
		return err
	}
	return nil
}
