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
	"gorm.io/gorm/clause"
)

// refreshCredentialRepository keeps one row per account, enforced by the
// unique index on account_id. Expired rows are invisible to reads and purged by the janitor.
type refreshCredentialRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRefreshCredentialRepository is the constructor for refreshCredentialRepository.
func NewRefreshCredentialRepository(db *gorm.DB) repository.RefreshCredentialRepository {
	return &refreshCredentialRepository{db: db, now: time.Now}
}

func (repo *refreshCredentialRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshCredential, error) {
	return repo.findOne(ctx, "token_hash = ?", tokenHash)
}

func (repo *refreshCredentialRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.RefreshCredential, error) {
	return repo.findOne(ctx, "account_id = ?", accountID)
}

func (repo *refreshCredentialRepository) findOne(ctx context.Context, query string, arg any) (*entity.RefreshCredential, error) {
	var credentialM model.RefreshCredentialModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&credentialM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrRefreshCredentialNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "refresh_credentials.find")
	}

	credential := toRefreshCredentialDomain(&credentialM)
	if credential.IsExpired(repo.now()) {
		return nil, repository.ErrRefreshCredentialExpired
	}

	return credential, nil
}

// Replace upserts on account_id in a single statement.
func (repo *refreshCredentialRepository) Replace(ctx context.Context, credential *entity.RefreshCredential) error {
	if credential.ID == uuid.Nil {
		credential.ID = uuid.New()
	}

	credentialM := fromRefreshCredentialDomain(credential)
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"id", "token_hash", "blacklisted", "created_at", "expires_at"}),
		}).
		Create(credentialM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(repository.ErrAccountNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "refresh_credentials.replace")
	}

	return nil
}

// Rotate is a conditional update; PostgreSQL re-checks the WHERE clause after
// waiting on a concurrent writer's row lock, so only one rotation of a hash succeeds.
func (repo *refreshCredentialRepository) Rotate(ctx context.Context, previousHash string, next *entity.RefreshCredential) error {
	if next.ID == uuid.Nil {
		next.ID = uuid.New()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RefreshCredentialModel{}).
		Where("account_id = ? AND token_hash = ? AND blacklisted = ? AND expires_at > ?",
			next.AccountID, previousHash, false, repo.now()).
		Updates(map[string]any{
			"id":          next.ID,
			"token_hash":  next.TokenHash,
			"blacklisted": false,
			"created_at":  next.CreatedAt,
			"expires_at":  next.ExpiresAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "refresh_credentials.rotate")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrRefreshCredentialConflict)
	}

	return nil
}

func (repo *refreshCredentialRepository) Blacklist(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RefreshCredentialModel{}).
		Where("token_hash = ?", tokenHash).
		Update("blacklisted", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "refresh_credentials.blacklist")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrRefreshCredentialNotFound)
	}

	return nil
}

func (repo *refreshCredentialRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.RefreshCredentialModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "refresh_credentials.delete_by_account")
	}

	return nil
}

func (repo *refreshCredentialRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", repo.now()).
		Delete(&model.RefreshCredentialModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "refresh_credentials.delete_expired")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toRefreshCredentialDomain(data *model.RefreshCredentialModel) *entity.RefreshCredential {
	if data == nil {
		return nil
	}

	return &entity.RefreshCredential{
		ID:          data.ID,
		AccountID:   data.AccountID,
		TokenHash:   data.TokenHash,
		Blacklisted: data.Blacklisted,
		CreatedAt:   data.CreatedAt,
		ExpiresAt:   data.ExpiresAt,
	}
}

func fromRefreshCredentialDomain(data *entity.RefreshCredential) *model.RefreshCredentialModel {
	if data == nil {
		return nil
	}

	return &model.RefreshCredentialModel{
		ID:          data.ID,
		AccountID:   data.AccountID,
		TokenHash:   data.TokenHash,
		Blacklisted: data.Blacklisted,
		CreatedAt:   data.CreatedAt,
		ExpiresAt:   data.ExpiresAt,
	}
}
