package repository

import (
	"context"

	"lensauth/internal/domain/entity"
	"lensauth/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrRecoveryCodeNotFound is returned when the account has no live code.
	ErrRecoveryCodeNotFound = errors.New("recovery code not found")
	// ErrRecoverySessionNotFound is returned when the session does not exist.
	ErrRecoverySessionNotFound = errors.New("recovery session not found")
)

// RecoveryRepository stores password-recovery codes and the reset sessions they unlock.
type RecoveryRepository interface {
	// UpsertCode replaces any code the account already has.
	UpsertCode(ctx context.Context, code *entity.RecoveryCode) error

	// FindCode returns the account's code, expired or not.
	FindCode(ctx context.Context, accountID uuid.UUID) (*entity.RecoveryCode, error)

	// DeleteCode consumes the account's code.
	DeleteCode(ctx context.Context, accountID uuid.UUID) error

	CreateSession(ctx context.Context, session *entity.RecoverySession) error

	// FindSession returns ErrRecoverySessionNotFound for unknown ids.
	FindSession(ctx context.Context, id uuid.UUID) (*entity.RecoverySession, error)

	// DeleteSession returns ErrRecoverySessionNotFound when nothing was deleted.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// DeleteExpired purges expired codes and sessions.
	DeleteExpired(ctx context.Context) (int64, error)
}
