package memory

import (
	"context"
	"sync"

	"lensauth/internal/domain/repository"
)

// TransactionManager serializes Execute calls. There is no rollback: a failing
// function leaves the writes it already made in place.
type TransactionManager struct {
	mu      sync.Mutex
	factory repositoryFactory
}

type repositoryFactory struct {
	accounts repository.AccountRepository
	recovery repository.RecoveryRepository
	refresh  repository.RefreshCredentialRepository
}

func (f repositoryFactory) NewAccountRepository() repository.AccountRepository { return f.accounts }

func (f repositoryFactory) NewRecoveryRepository() repository.RecoveryRepository { return f.recovery }

func (f repositoryFactory) NewRefreshCredentialRepository() repository.RefreshCredentialRepository {
	return f.refresh
}

// NewTransactionManager is the constructor for TransactionManager.
func NewTransactionManager(
	accounts repository.AccountRepository,
	recovery repository.RecoveryRepository,
	refresh repository.RefreshCredentialRepository,
) *TransactionManager {
	return &TransactionManager{
		factory: repositoryFactory{accounts: accounts, recovery: recovery, refresh: refresh},
	}
}

func (tm *TransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return fn(tm.factory)
}
