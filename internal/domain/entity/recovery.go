package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecoveryCode is the one-time code mailed during password recovery. One per account.
type RecoveryCode struct {
	AccountID uuid.UUID
	CodeHash  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// RecoverySession authorizes a single password reset after the code was verified.
type RecoverySession struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session can no longer be used.
func (s *RecoverySession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
