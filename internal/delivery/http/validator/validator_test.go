package validator

import (
	"testing"

	domainerrors "lensauth/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"firstname" validate:"required,max=5"`
	OTP   string `json:"otp" validate:"omitempty,len=6,numeric"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, cv.Validate(&signupRequest{Email: "ada@example.com", Name: "Ada", OTP: "123456"}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := cv.Validate(&signupRequest{Email: "not-an-email", Name: "Augusta"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var baseErr *domainerrors.BaseError
		require.ErrorAs(t, err, &baseErr)
		assert.Contains(t, baseErr.Details(), "email must be a valid email")
		assert.Contains(t, baseErr.Details(), "firstname must be at most 5 characters")
	})

	t.Run("missing fields", func(t *testing.T) {
		err := cv.Validate(&signupRequest{OTP: "12ab56"})

		var baseErr *domainerrors.BaseError
		require.ErrorAs(t, err, &baseErr)
		assert.Contains(t, baseErr.Details(), "email is required")
		assert.Contains(t, baseErr.Details(), "otp must contain only digits")
	})
}
