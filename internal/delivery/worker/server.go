// Package worker serves the Pub/Sub push endpoint that records auth events.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"lensauth/config"
	"lensauth/internal/delivery"
	"lensauth/internal/delivery/middleware"
	"lensauth/internal/delivery/worker/handler"
	"lensauth/internal/domain/lifecycle"
	"lensauth/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// pushBodyLimit caps a push envelope. Auth events are a few hundred bytes.
const pushBodyLimit = "64KB"

type auditServer struct {
	port   int
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the worker HTTP server receiving auth events.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger, params.PushHandler)

	srv := &auditServer{
		port:   params.Cfg.HTTP.Port,
		logger: params.Logger.With(slog.String("component", "auditworker")),
		echo:   e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout

	// Request IDs must exist before the logger runs.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", push.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

// Serve blocks until the server stops.
func (s *auditServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting audit worker", slog.String("hostPort", hostPort))

	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *auditServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down audit worker")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
