package repository

import (
	"context"

	"lensauth/internal/domain/entity"
	"lensauth/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrRefreshCredentialNotFound is returned when no live record matches.
	ErrRefreshCredentialNotFound = errors.New("refresh credential not found")
	// ErrRefreshCredentialExpired is returned when the record exists but is past ExpiresAt.
	ErrRefreshCredentialExpired = errors.New("refresh credential expired")
	// ErrRefreshCredentialConflict is returned by Rotate when the stored record no longer
	// carries the expected hash or has been blacklisted.
	ErrRefreshCredentialConflict = errors.New("refresh credential changed concurrently")
)

// RefreshCredentialRepository stores the single refresh record of each account.
type RefreshCredentialRepository interface {
	// FindByTokenHash looks a record up by the hash of the presented token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshCredential, error)

	// FindByAccountID returns the account's current record.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.RefreshCredential, error)

	// Replace atomically installs credential as the account's only record,
	// discarding any previous one. Concurrent callers: last writer wins.
	Replace(ctx context.Context, credential *entity.RefreshCredential) error

	// Rotate installs next only if the account's record still carries previousHash
	// and is not blacklisted; otherwise ErrRefreshCredentialConflict.
	Rotate(ctx context.Context, previousHash string, next *entity.RefreshCredential) error

	// Blacklist flags the record holding tokenHash. Unknown hashes return ErrRefreshCredentialNotFound.
	Blacklist(ctx context.Context, tokenHash string) error

	// DeleteByAccountID removes the account's record if any.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error

	// DeleteExpired purges records past ExpiresAt and reports how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
