// Package memory keeps accounts, refresh records and recovery state in process memory.
// It backs single-instance deployments and tests; nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"lensauth/internal/domain/entity"
	"lensauth/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AccountRepository implements repository.AccountRepository with an email index.
type AccountRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.Account
	byEmail map[string]uuid.UUID
	now     func() time.Time
}

// NewAccountRepository is the constructor for AccountRepository.
func NewAccountRepository() *AccountRepository {
	return NewAccountRepositoryWithClock(time.Now)
}

// NewAccountRepositoryWithClock lets tests control timestamps.
func NewAccountRepositoryWithClock(now func() time.Time) *AccountRepository {
	return &AccountRepository{
		byID:    make(map[uuid.UUID]*entity.Account),
		byEmail: make(map[string]uuid.UUID),
		now:     now,
	}
}

func (repo *AccountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	account, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return cloneAccount(account), nil
}

func (repo *AccountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return cloneAccount(repo.byID[id]), nil
}

func (repo *AccountRepository) Create(_ context.Context, account *entity.Account) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	account.Email = entity.NormalizeEmail(account.Email)
	if _, taken := repo.byEmail[account.Email]; taken {
		return errors.WithStack(repository.ErrAccountEmailTaken)
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	now := repo.now()
	account.CreatedAt = now
	account.UpdatedAt = now

	repo.byID[account.ID] = cloneAccount(account)
	repo.byEmail[account.Email] = account.ID

	return nil
}

// Update replaces the mutable fields. Email and CreatedAt are kept from the stored account.
func (repo *AccountRepository) Update(_ context.Context, account *entity.Account) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.byID[account.ID]
	if !ok {
		return repository.ErrAccountNotFound
	}

	account.UpdatedAt = repo.now()
	updated := cloneAccount(account)
	updated.Email = stored.Email
	updated.CreatedAt = stored.CreatedAt
	repo.byID[account.ID] = updated

	return nil
}

func (repo *AccountRepository) List(_ context.Context, limit, offset int) ([]*entity.Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	accounts := make([]*entity.Account, 0, len(repo.byID))
	for _, account := range repo.byID {
		accounts = append(accounts, cloneAccount(account))
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].Email < accounts[j].Email
		}

		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})

	if offset >= len(accounts) {
		return []*entity.Account{}, nil
	}
	accounts = accounts[offset:]
	if limit > 0 && limit < len(accounts) {
		accounts = accounts[:limit]
	}

	return accounts, nil
}

func cloneAccount(account *entity.Account) *entity.Account {
	cloned := *account
	if account.LastLoginAt != nil {
		lastLogin := *account.LastLoginAt
		cloned.LastLoginAt = &lastLogin
	}

	return &cloned
}
