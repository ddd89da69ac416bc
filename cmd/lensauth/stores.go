package main

import (
	"log/slog"

	"lensauth/config"
	"lensauth/internal/domain/repository"
	"lensauth/internal/infra/persistence/memory"
	"lensauth/internal/infra/persistence/postgres"
	"lensauth/internal/infra/persistence/redis"
	"lensauth/internal/errors"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type storesParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type storesResult struct {
	fx.Out

	Accounts  repository.AccountRepository
	Refresh   repository.RefreshCredentialRepository
	Recovery  repository.RecoveryRepository
	TxManager repository.TransactionManager
}

// provideStores picks the account and refresh backends named in store.*.
// Recovery records always live with the accounts.
func provideStores(params storesParams) (storesResult, error) {
	cfg := params.Config

	var db *gorm.DB
	if cfg.UsesPostgres() {
		var err error
		db, err = postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: cfg, Logger: params.Logger})
		if err != nil {
			return storesResult{}, err
		}
	}

	var out storesResult

	switch cfg.Store.RefreshBackend {
	case config.BackendPostgres:
		out.Refresh = postgres.NewRefreshCredentialRepository(db)
	case config.BackendRedis:
		client, err := redis.NewClient(redis.Params{Lifecycle: params.Lifecycle, Config: cfg, Logger: params.Logger})
		if err != nil {
			return storesResult{}, err
		}
		out.Refresh = redis.NewRefreshCredentialRepository(client)
	case config.BackendMemory:
		out.Refresh = memory.NewRefreshCredentialRepository()
	default:
		return storesResult{}, errors.Errorf("unknown store.refreshBackend: %s", cfg.Store.RefreshBackend)
	}

	switch cfg.Store.AccountBackend {
	case config.BackendPostgres:
		var external repository.RefreshCredentialRepository
		if cfg.Store.RefreshBackend != config.BackendPostgres {
			external = out.Refresh
		}
		out.Accounts = postgres.NewAccountRepository(db)
		out.Recovery = postgres.NewRecoveryRepository(db)
		out.TxManager = postgres.NewTransactionManager(db, external)
	case config.BackendMemory:
		out.Accounts = memory.NewAccountRepository()
		out.Recovery = memory.NewRecoveryRepository()
		out.TxManager = memory.NewTransactionManager(out.Accounts, out.Recovery, out.Refresh)
	default:
		return storesResult{}, errors.Errorf("unknown store.accountBackend: %s", cfg.Store.AccountBackend)
	}

	params.Logger.Info("Credential stores selected",
		slog.String("accounts", cfg.Store.AccountBackend),
		slog.String("refresh", cfg.Store.RefreshBackend),
	)

	return out, nil
}
