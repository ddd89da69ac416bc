package auth

import (
	"fmt"
	"strings"
	"unicode"

	"lensauth/config"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/service"
	"lensauth/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

var defaultForbiddenWords = []string{"password", "admin", "qwerty", "letmein"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost           int
	policy         config.PasswordStrengthConfig
	forbiddenWords []string
}

// NewBcryptHasher builds the hasher from the auth and passwordStrength config sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := defaultPolicy()
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithPolicy(cost, policy)
}

// NewBcryptHasherWithPolicy returns a hasher with an explicit cost and policy.
func NewBcryptHasherWithPolicy(cost int, policy config.PasswordStrengthConfig) service.PasswordHasher {
	if policy.MinLength <= 0 {
		policy.MinLength = 8
	}
	// bcrypt ignores everything past 72 bytes.
	if policy.MaxLength <= 0 || policy.MaxLength > 72 {
		policy.MaxLength = 72
	}

	return &bcryptHasher{
		cost:           cost,
		policy:         policy,
		forbiddenWords: defaultForbiddenWords,
	}
}

func defaultPolicy() config.PasswordStrengthConfig {
	return config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        72,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength rejects passwords that break the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := len([]rune(password))
	switch {
	case length < h.policy.MinLength:
		return weak(fmt.Sprintf("password must be at least %d characters long", h.policy.MinLength))
	case len(password) > h.policy.MaxLength:
		return weak(fmt.Sprintf("password must be at most %d bytes long", h.policy.MaxLength))
	case h.policy.RequireLowercase && !h.hasLowercase(password):
		return weak("password must contain at least one lowercase letter")
	case h.policy.RequireUppercase && !h.hasUppercase(password):
		return weak("password must contain at least one uppercase letter")
	case h.policy.RequireNumbers && !h.hasNumbers(password):
		return weak("password must contain at least one number")
	case h.policy.RequireSpecial && !h.hasSpecialChars(password):
		return weak("password must contain at least one special character")
	case h.containsForbiddenWords(password, h.forbiddenWords):
		return weak("password contains forbidden words")
	}

	return nil
}

func weak(details string) error {
	return domainerrors.ErrPasswordStrength.WithDetails(details)
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}

	return false
}
