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

type recoveryRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRecoveryRepository is the constructor for recoveryRepository.
func NewRecoveryRepository(db *gorm.DB) repository.RecoveryRepository {
	return &recoveryRepository{db: db, now: time.Now}
}

func (repo *recoveryRepository) UpsertCode(ctx context.Context, code *entity.RecoveryCode) error {
	codeM := &model.RecoveryCodeModel{
		AccountID: code.AccountID,
		CodeHash:  code.CodeHash,
		ExpiresAt: code.ExpiresAt,
		CreatedAt: code.CreatedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"code_hash", "expires_at", "created_at"}),
		}).
		Create(codeM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "recovery_codes.upsert")
	}

	return nil
}

func (repo *recoveryRepository) FindCode(ctx context.Context, accountID uuid.UUID) (*entity.RecoveryCode, error) {
	var codeM model.RecoveryCodeModel
	if err := repo.db.WithContext(ctx).Where("account_id = ?", accountID).First(&codeM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrRecoveryCodeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "recovery_codes.find")
	}

	return &entity.RecoveryCode{
		AccountID: codeM.AccountID,
		CodeHash:  codeM.CodeHash,
		ExpiresAt: codeM.ExpiresAt,
		CreatedAt: codeM.CreatedAt,
	}, nil
}

func (repo *recoveryRepository) DeleteCode(ctx context.Context, accountID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.RecoveryCodeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "recovery_codes.delete")
	}

	return nil
}

func (repo *recoveryRepository) CreateSession(ctx context.Context, session *entity.RecoverySession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(&model.RecoverySessionModel{
		ID:        session.ID,
		AccountID: session.AccountID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "recovery_sessions.create")
	}

	return nil
}

func (repo *recoveryRepository) FindSession(ctx context.Context, id uuid.UUID) (*entity.RecoverySession, error) {
	var sessionM model.RecoverySessionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&sessionM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrRecoverySessionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "recovery_sessions.find")
	}

	return &entity.RecoverySession{
		ID:        sessionM.ID,
		AccountID: sessionM.AccountID,
		ExpiresAt: sessionM.ExpiresAt,
		CreatedAt: sessionM.CreatedAt,
	}, nil
}

func (repo *recoveryRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RecoverySessionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "recovery_sessions.delete")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrRecoverySessionNotFound)
	}

	return nil
}

func (repo *recoveryRepository) DeleteExpired(ctx context.Context) (int64, error) {
	now := repo.now()

	codes := repo.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.RecoveryCodeModel{})
	if codes.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(codes.Error, "recovery_codes.delete_expired")
	}

	sessions := repo.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.RecoverySessionModel{})
	if sessions.Error != nil {
		return codes.RowsAffected, domainerrors.NewDatabaseExecuteError(sessions.Error, "recovery_sessions.delete_expired")
	}

	return codes.RowsAffected + sessions.RowsAffected, nil
}
