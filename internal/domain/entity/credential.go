package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind distinguishes the two halves of a token pair.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// RefreshCredential is the single server-side record that makes a refresh token usable.
// At most one exists per account; the token itself is stored only as its SHA-256 hash.
type RefreshCredential struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	TokenHash   string
	Blacklisted bool
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// IsExpired reports whether the record is past its storage expiry.
func (c *RefreshCredential) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// TokenPair is what a successful sign-in or renewal hands to the client.
type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}
