// Package submissions implements the two write paths of the site: client
// feedback, gated by human verification, and custom project requests,
// answered by email. Every failure leaves the package as an *Error.
package submissions

import (
	"errors"
	"fmt"
)

var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrVerificationFailed = errors.New("verification failed")
	ErrServiceNotFound    = errors.New("service not found")
	ErrNotificationFailed = errors.New("notification failed")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// Messages shown to visitors. Internal failures share one generic message.
const (
	MsgVerificationFailed = "Échec de la vérification reCAPTCHA."
	MsgServiceNotFound    = "Service non trouvé !"
	MsgInternal           = "Une erreur interne est survenue. Veuillez réessayer plus tard."

	MsgFeedbackAccepted       = "Avis envoyé avec succès !"
	MsgProjectRequestAccepted = "Demande de projet personnalisé envoyée avec succès !"
)

// Error is a failed submission. Kind is one of the Err* sentinels, Message
// is safe to show to the visitor, and Err is the underlying cause, if any,
// for logs only.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Outcome is the metrics label for err, "success" when err is nil.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrValidationFailed):
		return "validation_failed"
	case errors.Is(err, ErrVerificationFailed):
		return "verification_failed"
	case errors.Is(err, ErrServiceNotFound):
		return "service_not_found"
	case errors.Is(err, ErrNotificationFailed):
		return "notification_failed"
	case errors.Is(err, ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "error"
	}
}
