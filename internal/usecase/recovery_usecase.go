package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RecoveryCodeOutput identifies the account a code was issued for.
type RecoveryCodeOutput struct {
	AccountID uuid.UUID
}

// VerifyCodeOutput carries the reset session unlocked by a verified code.
type VerifyCodeOutput struct {
	SessionID uuid.UUID
	AccountID uuid.UUID
}

// ResetPasswordInput defines the data required to finish a password reset.
type ResetPasswordInput struct {
	SessionID       uuid.UUID
	Password        string
	ConfirmPassword string
}

// RecoveryUsecase runs password recovery: code, reset session, new password.
type RecoveryUsecase interface {
	RequestCode(ctx context.Context, email string) (*RecoveryCodeOutput, error)
	VerifyCode(ctx context.Context, accountID uuid.UUID, code string) (*VerifyCodeOutput, error)
	ValidateSession(ctx context.Context, sessionID uuid.UUID) (bool, error)
	InvalidateSession(ctx context.Context, sessionID uuid.UUID) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
