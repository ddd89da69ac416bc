// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"lensauth/internal/domain/entity"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/repository"
	"lensauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&accountM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "accounts.find_by_id")
	}

	return toAccountDomain(&accountM), nil
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", entity.NormalizeEmail(email)).
		First(&accountM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "accounts.find_by_email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. The entity receives the generated id and timestamps.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.Email = entity.NormalizeEmail(account.Email)

	accountM := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrAccountEmailTaken)
		}

		return domainerrors.NewDatabaseExecuteError(err, "accounts.create")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update saves every mutable column of an existing account.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	account.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"password_hash": account.PasswordHash,
			"first_name":    account.FirstName,
			"last_name":     account.LastName,
			"full_name":     account.FullName,
			"phone_no":      account.PhoneNo,
			"avatar":        account.Avatar,
			"google_id":     account.GoogleID,
			"is_active":     account.IsActive,
			"is_admin":      account.IsAdmin,
			"last_login_at": account.LastLoginAt,
			"updated_at":    account.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "accounts.update")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (repo *accountRepository) List(ctx context.Context, limit, offset int) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&accountModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "accounts.list")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		FullName:     data.FullName,
		PhoneNo:      data.PhoneNo,
		Avatar:       data.Avatar,
		GoogleID:     data.GoogleID,
		IsActive:     data.IsActive,
		IsAdmin:      data.IsAdmin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		LastLoginAt:  data.LastLoginAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		FullName:     data.FullName,
		PhoneNo:      data.PhoneNo,
		Avatar:       data.Avatar,
		GoogleID:     data.GoogleID,
		IsActive:     data.IsActive,
		IsAdmin:      data.IsAdmin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		LastLoginAt:  data.LastLoginAt,
	}
}
