package postgres

import (
	"context"

	"lensauth/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db           *gorm.DB
	refreshStore repository.RefreshCredentialRepository
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx           *gorm.DB
	refreshStore repository.RefreshCredentialRepository
}

func (f *gormRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

func (f *gormRepositoryFactory) NewRecoveryRepository() repository.RecoveryRepository {
	return NewRecoveryRepository(f.tx)
}

func (f *gormRepositoryFactory) NewRefreshCredentialRepository() repository.RefreshCredentialRepository {
	if f.refreshStore != nil {
		return f.refreshStore
	}

	return NewRefreshCredentialRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// A non-nil refreshStore means refresh records live outside PostgreSQL
// and are not part of the transaction.
func NewTransactionManager(db *gorm.DB, refreshStore repository.RefreshCredentialRepository) repository.TransactionManager {
	return &gormTransactionManager{db: db, refreshStore: refreshStore}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx, refreshStore: tm.refreshStore}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
