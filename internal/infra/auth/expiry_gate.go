package auth

import (
	"time"

	"lensauth/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

type expiryGate struct {
	parser *jwt.Parser
	now    func() time.Time
}

// NewExpiryGate returns a gate that only decodes tokens. It never checks signatures,
// so its answer is a routing hint and never an authentication decision.
func NewExpiryGate() service.ExpiryGate {
	return NewExpiryGateWithClock(time.Now)
}

// NewExpiryGateWithClock builds the gate around an explicit clock.
func NewExpiryGateWithClock(now func() time.Time) service.ExpiryGate {
	return &expiryGate{
		parser: jwt.NewParser(),
		now:    now,
	}
}

// IsExpired treats empty, undecodable and exp-less tokens as expired.
func (g *expiryGate) IsExpired(token string) bool {
	if token == "" {
		return true
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := g.parser.ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}

	return !g.now().Before(claims.ExpiresAt.Time)
}
