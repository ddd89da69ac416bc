package auth

import (
	"testing"

	"lensauth/config"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(policy config.PasswordStrengthConfig) *bcryptHasher {
	return NewBcryptHasherWithPolicy(bcrypt.MinCost, policy).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(defaultPolicy())

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("StrongPass123!", "invalid_hash"))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	policy := defaultPolicy()
	policy.RequireSpecial = true
	hasher := newTestHasher(policy)

	for _, password := range []string{"StrongPass123!", "MySecure@Pass1", "Pässphräse123!"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"123", "at least 8 characters"},
		{"PASSWORD123!", "lowercase letter"},
		{"password123!", "uppercase letter"},
		{"PasswordABC!", "one number"},
		{"Secure1234", "special character"},
		{"Password123!", "forbidden words"},
		{"MyAdmin123!", "forbidden words"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tc.expectedErr)
		})
	}
}

func TestBcryptHasher_RejectsPasswordsBcryptWouldTruncate(t *testing.T) {
	hasher := newTestHasher(defaultPolicy())

	long := "Aa1" + string(make([]byte, 80))
	err := hasher.ValidatePasswordStrength(long)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestBcryptHasher_Helpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Password"))
	assert.False(t, hasher.hasUppercase("password"))
	assert.True(t, hasher.hasLowercase("Password"))
	assert.False(t, hasher.hasLowercase("PASSWORD"))
	assert.True(t, hasher.hasNumbers("Password123"))
	assert.False(t, hasher.hasNumbers("Password"))
	assert.True(t, hasher.hasSpecialChars("Password!"))
	assert.False(t, hasher.hasSpecialChars("Password"))
	assert.True(t, hasher.containsForbiddenWords("MyPassword123", []string{"password"}))
	assert.False(t, hasher.containsForbiddenWords("SecurePass123", []string{"password"}))
}
