package google

import (
	"time"

	"lensauth/config"
	"lensauth/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const stateTTL = 10 * time.Minute

// StateSigner issues the OAuth state parameter as a short-lived signed token.
// The nonce it carries is also stored in a cookie, so a callback is only
// accepted by the browser that started the flow.
type StateSigner struct {
	secret []byte
	now    func() time.Time
}

// NewStateSigner signs with secretKey.state, falling back to the access secret.
func NewStateSigner(cfg *config.Config) *StateSigner {
	secret := cfg.SecretKey.State
	if secret == "" {
		secret = cfg.SecretKey.Access + ":oauth-state"
	}

	return &StateSigner{secret: []byte(secret), now: time.Now}
}

// Issue returns the state parameter and the nonce to bind to the browser.
func (s *StateSigner) Issue() (state, nonce string, err error) {
	nonce = uuid.NewString()
	now := s.now()
	state, err = jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        nonce,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
	}).SignedString(s.secret)
	if err != nil {
		return "", "", errors.Wrap(err, "sign oauth state")
	}

	return state, nonce, nil
}

// TTL is how long a state stays valid.
func (s *StateSigner) TTL() time.Duration {
	return stateTTL
}

// Verify checks the state signature, expiry and that it carries nonce.
func (s *StateSigner) Verify(state, nonce string) error {
	if state == "" || nonce == "" {
		return errors.New("missing oauth state")
	}

	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(state, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return errors.Wrap(err, "invalid oauth state")
	}
	if claims.ID != nonce {
		return errors.New("oauth state does not match this browser")
	}

	return nil
}
