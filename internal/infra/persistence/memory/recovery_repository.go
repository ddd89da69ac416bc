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

// RecoveryRepository implements repository.RecoveryRepository.
type RecoveryRepository struct {
	mu       sync.Mutex
	codes    map[uuid.UUID]entity.RecoveryCode
	sessions map[uuid.UUID]entity.RecoverySession
	now      func() time.Time
}

// NewRecoveryRepository is the constructor for RecoveryRepository.
func NewRecoveryRepository() *RecoveryRepository {
	return NewRecoveryRepositoryWithClock(time.Now)
}

// NewRecoveryRepositoryWithClock lets tests control expiry.
func NewRecoveryRepositoryWithClock(now func() time.Time) *RecoveryRepository {
	return &RecoveryRepository{
		codes:    make(map[uuid.UUID]entity.RecoveryCode),
		sessions: make(map[uuid.UUID]entity.RecoverySession),
		now:      now,
	}
}

func (repo *RecoveryRepository) UpsertCode(_ context.Context, code *entity.RecoveryCode) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.codes[code.AccountID] = *code

	return nil
}

func (repo *RecoveryRepository) FindCode(_ context.Context, accountID uuid.UUID) (*entity.RecoveryCode, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	code, ok := repo.codes[accountID]
	if !ok {
		return nil, repository.ErrRecoveryCodeNotFound
	}

	return &code, nil
}

func (repo *RecoveryRepository) DeleteCode(_ context.Context, accountID uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.codes, accountID)

	return nil
}

func (repo *RecoveryRepository) CreateSession(_ context.Context, session *entity.RecoverySession) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	repo.sessions[session.ID] = *session

	return nil
}

func (repo *RecoveryRepository) FindSession(_ context.Context, id uuid.UUID) (*entity.RecoverySession, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	session, ok := repo.sessions[id]
	if !ok {
		return nil, repository.ErrRecoverySessionNotFound
	}

	return &session, nil
}

func (repo *RecoveryRepository) DeleteSession(_ context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.sessions[id]; !ok {
		return errors.WithStack(repository.ErrRecoverySessionNotFound)
	}
	delete(repo.sessions, id)

	return nil
}

func (repo *RecoveryRepository) DeleteExpired(_ context.Context) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := repo.now()
	var removed int64
	for accountID, code := range repo.codes {
		if !now.Before(code.ExpiresAt) {
			delete(repo.codes, accountID)
			removed++
		}
	}
	for id, session := range repo.sessions {
		if session.IsExpired(now) {
			delete(repo.sessions, id)
			removed++
		}
	}

	return removed, nil
}
