package submissions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("smtp: 421")
	err := newError(ErrNotificationFailed, MsgInternal, cause)

	assert.ErrorIs(t, err, ErrNotificationFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "smtp: 421")
}

func TestError_WithoutCause(t *testing.T) {
	err := newError(ErrValidationFailed, "Le nom est requis.", nil)

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "validation failed: Le nom est requis.", err.Error())
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "success"},
		{newError(ErrValidationFailed, "", nil), "validation_failed"},
		{newError(ErrVerificationFailed, "", nil), "verification_failed"},
		{newError(ErrServiceNotFound, "", nil), "service_not_found"},
		{newError(ErrNotificationFailed, "", nil), "notification_failed"},
		{fmt.Errorf("wrapped: %w", newError(ErrStoreUnavailable, "", nil)), "store_unavailable"},
		{errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.err))
		})
	}
}
