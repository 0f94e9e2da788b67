package submissions

import (
	"context"
	"errors"
	"time"

	"maisonweb/database"
	"maisonweb/mailer"
	"maisonweb/metrics"
	"maisonweb/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceCatalog resolves catalog services. A missing service is reported
// with an error wrapping database.ErrNotFound.
type ServiceCatalog interface {
	GetService(ctx context.Context, id uuid.UUID) (*models.Service, error)
}

// ProjectRequestInput is a custom project request as posted by the form.
type ProjectRequestInput struct {
	Name      string `validate:"required,max=100"`
	Email     string `validate:"required,email,max=254"`
	Phone     string `validate:"required,max=30"`
	Budget    string `validate:"required"`
	ServiceID string `validate:"required"`
	Summary   string `validate:"max=5000"`
}

const (
	msgInvalidBudget = "Le budget sélectionné est invalide."

	recipientOperator  = "operator"
	recipientRequester = "requester"
)

type ProjectRequestPipeline struct {
	catalog       ServiceCatalog
	mailer        mailer.Mailer
	operatorEmail string
	metrics       *metrics.Metrics
	log           *zap.Logger
	now           func() time.Time
}

func NewProjectRequestPipeline(catalog ServiceCatalog, m mailer.Mailer, operatorEmail string, mt *metrics.Metrics, log *zap.Logger) *ProjectRequestPipeline {
	return &ProjectRequestPipeline{
		catalog:       catalog,
		mailer:        m,
		operatorEmail: operatorEmail,
		metrics:       mt,
		log:           log,
		now:           time.Now,
	}
}

// Submit validates in, resolves the requested service and sends two emails
// in order: the operator notification, then the requester confirmation.
// Nothing is stored. The first failed send aborts the request; an operator
// notification already delivered stays delivered. Identical requests are
// not deduplicated.
func (p *ProjectRequestPipeline) Submit(ctx context.Context, in ProjectRequestInput) (message string, err error) {
	defer func() {
		p.metrics.ObserveSubmission(metrics.PipelineProjectRequest, Outcome(err))
	}()

	in.Name = trim(in.Name)
	in.Email = trim(in.Email)
	in.Phone = trim(in.Phone)
	in.ServiceID = trim(in.ServiceID)
	in.Summary = trim(in.Summary)

	if err := validateStruct(in); err != nil {
		p.log.Info("Project request rejected", zap.Error(err))
		return "", err
	}

	budget, ok := models.ParseBudget(in.Budget)
	if !ok {
		p.log.Info("Project request rejected", zap.String("budget", in.Budget))
		return "", newError(ErrValidationFailed, msgInvalidBudget, nil)
	}

	service, err := p.resolveService(ctx, in.ServiceID)
	if err != nil {
		return "", err
	}

	details := mailer.ProjectRequestDetails{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Budget:       budget.String(),
		ServiceTitle: service.Title,
		Summary:      in.Summary,
	}

	// Render both messages before sending anything so a template failure
	// cannot leave the operator notified and the requester not.
	now := p.now()
	operatorMsg, err := mailer.OperatorNotification(p.operatorEmail, details, now)
	if err != nil {
		p.log.Error("Failed to render operator notification", zap.Error(err))
		return "", newError(ErrNotificationFailed, MsgInternal, err)
	}
	requesterMsg, err := mailer.RequesterConfirmation(details, now)
	if err != nil {
		p.log.Error("Failed to render requester confirmation", zap.Error(err))
		return "", newError(ErrNotificationFailed, MsgInternal, err)
	}

	if err := p.send(ctx, recipientOperator, operatorMsg); err != nil {
		return "", err
	}
	if err := p.send(ctx, recipientRequester, requesterMsg); err != nil {
		return "", err
	}

	p.log.Info("Project request notified",
		zap.String("service_id", service.ID.String()),
		zap.String("budget", budget.String()))
	return MsgProjectRequestAccepted, nil
}

func (p *ProjectRequestPipeline) resolveService(ctx context.Context, rawID string) (*models.Service, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		p.log.Info("Project request for malformed service id", zap.String("service_id", rawID))
		return nil, newError(ErrServiceNotFound, MsgServiceNotFound, err)
	}

	service, err := p.catalog.GetService(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			p.log.Info("Project request for unknown service", zap.String("service_id", rawID))
			return nil, newError(ErrServiceNotFound, MsgServiceNotFound, err)
		}
		p.log.Error("Failed to resolve service", zap.String("service_id", rawID), zap.Error(err))
		return nil, newError(ErrStoreUnavailable, MsgInternal, err)
	}

	return service, nil
}

func (p *ProjectRequestPipeline) send(ctx context.Context, recipient string, msg mailer.Message) error {
	if err := p.mailer.Send(ctx, msg); err != nil {
		p.metrics.ObserveNotification(recipient, "failed")
		p.log.Error("Failed to send notification", zap.String("recipient", recipient), zap.Error(err))
		return newError(ErrNotificationFailed, MsgInternal, err)
	}
	p.metrics.ObserveNotification(recipient, "sent")
	return nil
}
