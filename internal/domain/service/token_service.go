package service

import (
	"time"

	"lensauth/internal/domain/entity"
	"lensauth/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failures. Every one of them means "not authenticated" to a caller.
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
)

// Claims embeds the account snapshot taken at issue time.
type Claims struct {
	AccountID uuid.UUID        `json:"aid"`
	Email     string           `json:"email"`
	FirstName string           `json:"firstName,omitempty"`
	LastName  string           `json:"lastName,omitempty"`
	FullName  string           `json:"fullName,omitempty"`
	Avatar    string           `json:"avatar,omitempty"`
	IsActive  bool             `json:"act"`
	Roles     []string         `json:"roles"`
	Kind      entity.TokenKind `json:"typ"`
	jwt.RegisteredClaims
}

// Identity converts verified claims back into the typed snapshot.
func (c *Claims) Identity() *entity.Identity {
	return &entity.Identity{
		AccountID: c.AccountID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName,
		Avatar:    c.Avatar,
		IsActive:  c.IsActive,
		Roles:     entity.RolesFromStrings(c.Roles),
	}
}

// SignedToken is a compact JWS together with its expiry.
type SignedToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenService signs and verifies the two token kinds with independent secrets and lifetimes.
// It holds no state beyond its keys.
type TokenService interface {
	// Sign issues a token of the given kind carrying the identity snapshot.
	Sign(kind entity.TokenKind, identity *entity.Identity) (*SignedToken, error)

	// Verify checks signature, expiry and kind. It returns ErrTokenExpired,
	// ErrTokenMalformed or ErrTokenSignatureInvalid on failure.
	Verify(kind entity.TokenKind, token string) (*Claims, error)

	// HashToken returns the storage representation of a refresh token.
	HashToken(token string) string

	// TTL returns the configured lifetime of the given kind.
	TTL(kind entity.TokenKind) time.Duration
}

// ExpiryGate answers "is this token past its exp" without checking the signature.
type ExpiryGate interface {
	IsExpired(token string) bool
}
