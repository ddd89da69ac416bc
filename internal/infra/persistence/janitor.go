// Package persistence holds store-independent maintenance for the credential stores.
package persistence

import (
	"context"
	"log/slog"
	"time"

	"lensauth/config"
	"lensauth/internal/domain/repository"
	"lensauth/internal/util"

	"go.uber.org/fx"
)

// Purger removes records that can no longer be used.
type Purger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// JanitorParams defines the dependencies of the janitor.
type JanitorParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Refresh  repository.RefreshCredentialRepository
	Recovery repository.RecoveryRepository
}

// Janitor periodically purges expired refresh records, recovery codes and sessions.
type Janitor struct {
	logger   *slog.Logger
	interval time.Duration
	purgers  map[string]Purger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewJanitor registers the purge loop with the fx lifecycle.
func NewJanitor(params JanitorParams) *Janitor {
	interval := params.Config.Store.JanitorInterval
	j := newJanitor(params.Logger, interval, map[string]Purger{
		"refresh_credentials": params.Refresh,
		"recovery":            params.Recovery,
	})

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			j.Start()
			params.Logger.Info("Credential janitor started", slog.String("interval", util.FormatDuration(interval)))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return j.Stop(ctx)
		},
	})

	return j
}

func newJanitor(logger *slog.Logger, interval time.Duration, purgers map[string]Purger) *Janitor {
	return &Janitor{
		logger:   logger,
		interval: interval,
		purgers:  purgers,
	}
}

// Start launches the loop. The first sweep runs after one interval.
func (j *Janitor) Start() {
	if j.interval <= 0 || j.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.done = make(chan struct{})

	go j.run(ctx)
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (j *Janitor) Stop(ctx context.Context) error {
	if j.cancel == nil {
		return nil
	}
	j.cancel()

	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *Janitor) run(ctx context.Context) {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep runs every purger once and returns the total number of removed records.
// A failing purger is logged and does not stop the others.
func (j *Janitor) Sweep(ctx context.Context) int64 {
	var total int64
	for name, purger := range j.purgers {
		if purger == nil {
			continue
		}

		removed, err := purger.DeleteExpired(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Expired record purge failed",
				slog.String("store", name),
				slog.Any("error", err),
			)

			continue
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Expired records purged",
				slog.String("store", name),
				slog.Int64("removed", removed),
			)
		}
		total += removed
	}

	return total
}
