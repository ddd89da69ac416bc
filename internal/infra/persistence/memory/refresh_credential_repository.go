package memory

import (
	"context"
	"sync"
	"time"

	"lensauth/internal/domain/entity"
	"lensauth/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// RefreshCredentialRepository keeps one record per account behind a single mutex,
// which makes Rotate a compare-and-swap.
type RefreshCredentialRepository struct {
	mu        sync.Mutex
	byAccount map[uuid.UUID]*entity.RefreshCredential
	byHash    map[string]uuid.UUID
	now       func() time.Time
}

// NewRefreshCredentialRepository is the constructor for RefreshCredentialRepository.
func NewRefreshCredentialRepository() *RefreshCredentialRepository {
	return NewRefreshCredentialRepositoryWithClock(time.Now)
}

// NewRefreshCredentialRepositoryWithClock lets tests control expiry.
func NewRefreshCredentialRepositoryWithClock(now func() time.Time) *RefreshCredentialRepository {
	return &RefreshCredentialRepository{
		byAccount: make(map[uuid.UUID]*entity.RefreshCredential),
		byHash:    make(map[string]uuid.UUID),
		now:       now,
	}
}

func (repo *RefreshCredentialRepository) FindByTokenHash(_ context.Context, tokenHash string) (*entity.RefreshCredential, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	accountID, ok := repo.byHash[tokenHash]
	if !ok {
		return nil, repository.ErrRefreshCredentialNotFound
	}

	return repo.live(repo.byAccount[accountID])
}

func (repo *RefreshCredentialRepository) FindByAccountID(_ context.Context, accountID uuid.UUID) (*entity.RefreshCredential, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	credential, ok := repo.byAccount[accountID]
	if !ok {
		return nil, repository.ErrRefreshCredentialNotFound
	}

	return repo.live(credential)
}

func (repo *RefreshCredentialRepository) live(credential *entity.RefreshCredential) (*entity.RefreshCredential, error) {
	if credential.IsExpired(repo.now()) {
		return nil, repository.ErrRefreshCredentialExpired
	}
	cloned := *credential

	return &cloned, nil
}

func (repo *RefreshCredentialRepository) Replace(_ context.Context, credential *entity.RefreshCredential) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.install(credential)

	return nil
}

func (repo *RefreshCredentialRepository) Rotate(_ context.Context, previousHash string, next *entity.RefreshCredential) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	current, ok := repo.byAccount[next.AccountID]
	if !ok || current.TokenHash != previousHash || current.Blacklisted || current.IsExpired(repo.now()) {
		return errors.WithStack(repository.ErrRefreshCredentialConflict)
	}

	repo.install(next)

	return nil
}

// install must be called with mu held.
func (repo *RefreshCredentialRepository) install(credential *entity.RefreshCredential) {
	if credential.ID == uuid.Nil {
		credential.ID = uuid.New()
	}
	if previous, ok := repo.byAccount[credential.AccountID]; ok {
		delete(repo.byHash, previous.TokenHash)
	}

	stored := *credential
	stored.Blacklisted = false
	repo.byAccount[credential.AccountID] = &stored
	repo.byHash[credential.TokenHash] = credential.AccountID
}

func (repo *RefreshCredentialRepository) Blacklist(_ context.Context, tokenHash string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	accountID, ok := repo.byHash[tokenHash]
	if !ok {
		return errors.WithStack(repository.ErrRefreshCredentialNotFound)
	}
	repo.byAccount[accountID].Blacklisted = true

	return nil
}

func (repo *RefreshCredentialRepository) DeleteByAccountID(_ context.Context, accountID uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if credential, ok := repo.byAccount[accountID]; ok {
		delete(repo.byHash, credential.TokenHash)
		delete(repo.byAccount, accountID)
	}

	return nil
}

func (repo *RefreshCredentialRepository) DeleteExpired(_ context.Context) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := repo.now()
	var removed int64
	for accountID, credential := range repo.byAccount {
		if credential.IsExpired(now) {
			delete(repo.byHash, credential.TokenHash)
			delete(repo.byAccount, accountID)
			removed++
		}
	}

	return removed, nil
}
