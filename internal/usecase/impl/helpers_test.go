package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"lensauth/config"
	"lensauth/internal/domain/entity"
	"lensauth/internal/domain/service"
	"lensauth/internal/infra/auth"
	"lensauth/internal/infra/persistence/memory"
	"lensauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.Token = &config.TokenConfig{AccessTTL: 900 * time.Second, RefreshTTL: 120 * time.Hour}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4, PlaceholderCharset: config.DefaultPlaceholderCharset}
	cfg.Recovery = &config.RecoveryConfig{CodeTTL: 10 * time.Minute, SessionTTL: 15 * time.Minute}

	return cfg
}

func newTestAccount() *entity.Account {
	return &entity.Account{
		ID:        uuid.New(),
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		FullName:  "Ada Lovelace",
		IsActive:  true,
	}
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.AuthEvent
}

func (p *recordingPublisher) PublishAuthEvent(_ context.Context, event *service.AuthEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) ofType(eventType service.AuthEventType) []*service.AuthEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []*service.AuthEvent
	for _, e := range p.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}

	return out
}

// harness wires the real token codec, hasher and in-memory stores around a shared fake clock.
type harness struct {
	clock       *fakeClock
	accountRepo *memory.AccountRepository
	refreshRepo *memory.RefreshCredentialRepository
	recovery    *memory.RecoveryRepository
	tokens      service.TokenService
	hasher      service.PasswordHasher
	events      *recordingPublisher
	issuer      usecase.TokenIssuer
	coordinator usecase.RefreshCoordinator
	bootstrap   usecase.IdentityBootstrap
	accounts    usecase.AccountUsecase
	recoveryUC  usecase.RecoveryUsecase
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := newTestConfig()
	clock := newFakeClock()
	logger := newDiscardLogger()

	tokens, err := auth.NewJWTServiceWithClock(cfg, clock.Now)
	require.NoError(t, err)

	h := &harness{
		clock:       clock,
		accountRepo: memory.NewAccountRepositoryWithClock(clock.Now),
		refreshRepo: memory.NewRefreshCredentialRepositoryWithClock(clock.Now),
		recovery:    memory.NewRecoveryRepositoryWithClock(clock.Now),
		tokens:      tokens,
		hasher: auth.NewBcryptHasherWithPolicy(4, config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		}),
		events: &recordingPublisher{},
	}

	h.issuer = NewTokenIssuer(TokenIssuerParams{
		TokenService: tokens,
		RefreshRepo:  h.refreshRepo,
		Logger:       logger,
	})
	h.coordinator = NewRefreshCoordinator(RefreshCoordinatorParams{
		TokenService: tokens,
		AccountRepo:  h.accountRepo,
		RefreshRepo:  h.refreshRepo,
		Issuer:       h.issuer,
		Logger:       logger,
	})
	h.bootstrap = NewIdentityBootstrap(IdentityBootstrapParams{
		AccountRepo: h.accountRepo,
		Hasher:      h.hasher,
		Publisher:   h.events,
		Config:      cfg,
		Logger:      logger,
	})

	accounts := NewAccountService(AccountServiceParams{
		AccountRepo:  h.accountRepo,
		RefreshRepo:  h.refreshRepo,
		Hasher:       h.hasher,
		TokenService: tokens,
		Publisher:    h.events,
		Issuer:       h.issuer,
		Bootstrap:    h.bootstrap,
		Logger:       logger,
	})
	accounts.(*accountService).now = clock.Now
	h.accounts = accounts

	recoveryUC := NewRecoveryService(RecoveryServiceParams{
		TxManager:    memory.NewTransactionManager(h.accountRepo, h.recovery, h.refreshRepo),
		AccountRepo:  h.accountRepo,
		RecoveryRepo: h.recovery,
		Hasher:       h.hasher,
		Publisher:    h.events,
		Config:       cfg,
		Logger:       logger,
	})
	recoveryUC.(*recoveryService).now = clock.Now
	h.recoveryUC = recoveryUC

	return h
}

// seedAccount registers an active password account directly in the store.
func (h *harness) seedAccount(t *testing.T, email, password string) *entity.Account {
	t.Helper()

	hash, err := h.hasher.Hash(password)
	require.NoError(t, err)

	account := &entity.Account{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "User",
		FullName:     "Test User",
		IsActive:     true,
	}
	require.NoError(t, h.accountRepo.Create(context.Background(), account))

	return account
}
