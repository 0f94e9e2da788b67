package submissions

import (
	"context"
	"errors"

	"maisonweb/metrics"
	"maisonweb/models"
	"maisonweb/verification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeedbackStore persists reviews.
type FeedbackStore interface {
	CreateFeedback(ctx context.Context, feedback models.Feedback) (*models.Feedback, error)
}

// Verifier checks a human-verification token. Any error means the token
// was not confirmed; verification.ErrRejected marks an explicit refusal.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// FeedbackInput is a validated-at-the-boundary feedback submission.
type FeedbackInput struct {
	ClientName   string `validate:"required,max=100"`
	FeedbackText string `validate:"required,max=2000"`
	Rating       int    `validate:"required,min=1,max=5"`
	Token        string `validate:"required"`
	RemoteIP     string
}

type FeedbackResult struct {
	ID      uuid.UUID
	Message string
}

type FeedbackPipeline struct {
	store    FeedbackStore
	verifier Verifier
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func NewFeedbackPipeline(store FeedbackStore, verifier Verifier, m *metrics.Metrics, log *zap.Logger) *FeedbackPipeline {
	return &FeedbackPipeline{store: store, verifier: verifier, metrics: m, log: log}
}

// Submit validates in, checks the verification token, then stores the
// review unapproved. Invalid input never reaches the verifier, and a failed
// verification never reaches the store. A store failure after a successful
// verification is reported as is: the token is spent either way.
func (p *FeedbackPipeline) Submit(ctx context.Context, in FeedbackInput) (result *FeedbackResult, err error) {
	defer func() {
		p.metrics.ObserveSubmission(metrics.PipelineFeedback, Outcome(err))
	}()

	in.ClientName = trim(in.ClientName)
	in.FeedbackText = trim(in.FeedbackText)
	in.Token = trim(in.Token)

	if err := validateStruct(in); err != nil {
		p.log.Info("Feedback rejected", zap.Error(err))
		return nil, err
	}

	if err := p.verifier.Verify(ctx, in.Token, in.RemoteIP); err != nil {
		reason := "unreachable"
		if errors.Is(err, verification.ErrRejected) {
			reason = "rejected"
		}
		p.metrics.ObserveVerification(reason)
		p.log.Warn("Feedback verification failed", zap.String("reason", reason), zap.Error(err))
		return nil, newError(ErrVerificationFailed, MsgVerificationFailed, err)
	}
	p.metrics.ObserveVerification("passed")

	created, err := p.store.CreateFeedback(ctx, models.Feedback{
		ClientName:   in.ClientName,
		FeedbackText: in.FeedbackText,
		Rating:       in.Rating,
		Approved:     false,
	})
	if err != nil {
		p.log.Error("Failed to store feedback", zap.Error(err))
		return nil, newError(ErrStoreUnavailable, MsgInternal, err)
	}

	p.log.Info("Feedback stored", zap.String("id", created.ID.String()), zap.Int("rating", created.Rating))
	return &FeedbackResult{ID: created.ID, Message: MsgFeedbackAccepted}, nil
}
