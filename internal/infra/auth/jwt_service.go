// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"lensauth/config"
	"lensauth/internal/domain/entity"
	"lensauth/internal/domain/service"
	"lensauth/internal/errors"
	"lensauth/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return NewJWTServiceWithClock(cfg, time.Now)
}

// NewJWTServiceWithClock builds the service around an explicit clock.
func NewJWTServiceWithClock(cfg *config.Config, now func() time.Time) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	accessTTL, refreshTTL := 900*time.Second, 5*24*time.Hour
	if cfg.Token != nil {
		if cfg.Token.AccessTTL > 0 {
			accessTTL = cfg.Token.AccessTTL
		}
		if cfg.Token.RefreshTTL > 0 {
			refreshTTL = cfg.Token.RefreshTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           now,
	}, nil
}

// Sign issues a token of the given kind carrying the identity snapshot.
func (s *jwtService) Sign(kind entity.TokenKind, identity *entity.Identity) (*service.SignedToken, error) {
	secret, ttl, err := s.keyFor(kind)
	if err != nil {
		return nil, err
	}
	if identity == nil || identity.AccountID == uuid.Nil {
		return nil, errors.New("identity with an account id is required")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(ttl)
	claims := &service.Claims{
		AccountID: identity.AccountID,
		Email:     identity.Email,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		FullName:  identity.FullName,
		Avatar:    identity.Avatar,
		IsActive:  identity.IsActive,
		Roles:     identity.Roles.ToStrings(),
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.AccountID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			// Two tokens minted in the same second must still differ.
			ID: uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return nil, errors.Wrapf(err, "sign %s token", kind)
	}

	return &service.SignedToken{
		Value:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Verify checks signature, expiry and kind.
func (s *jwtService) Verify(kind entity.TokenKind, tokenString string) (*service.Claims, error) {
	secret, _, err := s.keyFor(kind)
	if err != nil {
		return nil, err
	}
	if tokenString == "" {
		return nil, service.ErrTokenMalformed
	}

	claims := &service.Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyJWTError(err)
	}

	if claims.Kind != kind || claims.AccountID == uuid.Nil {
		return nil, errors.Wrapf(service.ErrTokenMalformed, "expected %s token", kind)
	}

	return claims, nil
}

// HashToken returns the hex SHA-256 of the token. Equal hashes mean equal tokens.
func (s *jwtService) HashToken(token string) string {
	return util.SHA256Hex(token)
}

// TTL returns the configured lifetime of the given kind.
func (s *jwtService) TTL(kind entity.TokenKind) time.Duration {
	if kind == entity.TokenKindRefresh {
		return s.refreshTTL
	}

	return s.accessTTL
}

func (s *jwtService) keyFor(kind entity.TokenKind) ([]byte, time.Duration, error) {
	switch kind {
	case entity.TokenKindAccess:
		return s.accessSecret, s.accessTTL, nil
	case entity.TokenKindRefresh:
		return s.refreshSecret, s.refreshTTL, nil
	default:
		return nil, 0, errors.Errorf("unknown token kind %q", kind)
	}
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Wrap(service.ErrTokenSignatureInvalid, err.Error())
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
