// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"lensauth/internal/domain/entity"
)

// TokenIssuer mints access/refresh pairs and installs the account's single refresh record.
type TokenIssuer interface {
	// Issue replaces whatever refresh record the account had. Concurrent issues: last writer wins.
	Issue(ctx context.Context, account *entity.Account) (*entity.TokenPair, error)

	// Rotate succeeds only while the account's record still holds previousHash and is
	// not blacklisted; otherwise it fails with ErrRefreshTokenRevoked.
	Rotate(ctx context.Context, account *entity.Account, previousHash string) (*entity.TokenPair, error)
}

// RefreshCoordinator exchanges a refresh token for a new pair. Refresh tokens are single-use.
type RefreshCoordinator interface {
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
}

// IdentityBootstrap finds or creates the account behind a verified provider profile.
type IdentityBootstrap interface {
	Bootstrap(ctx context.Context, profile *entity.ProviderProfile) (*entity.Account, error)
}
