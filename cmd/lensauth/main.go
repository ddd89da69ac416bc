package main

import (
	"context"
	"log/slog"
	"os"

	"lensauth/config"
	"lensauth/internal/delivery"
	"lensauth/internal/delivery/http"
	"lensauth/internal/delivery/http/cookies"
	"lensauth/internal/delivery/http/middleware"
	"lensauth/internal/delivery/http/router/handler"
	"lensauth/internal/domain/service"
	"lensauth/internal/infra/auth"
	"lensauth/internal/infra/auth/google"
	logs "lensauth/internal/infra/log"
	"lensauth/internal/infra/persistence"
	"lensauth/internal/infra/pubsub"
	"lensauth/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startJanitor,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			provideStores,
			persistence.NewJanitor,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewExpiryGate,
			newIdentityProvider,
			fx.Annotate(
				google.NewStateSigner,
				fx.As(new(handler.OAuthState)),
			),
		),
	)
}

// newIdentityProvider returns nil when Google sign-in is not configured.
func newIdentityProvider(cfg *config.Config, logger *slog.Logger) service.IdentityProvider {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		logger.Info("Google OAuth not configured, provider sign-in disabled")

		return nil
	}

	return google.NewOAuthService(cfg, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTokenIssuer,
			impl.NewRefreshCoordinator,
			impl.NewIdentityBootstrap,
			impl.NewAccountService,
			impl.NewRecoveryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			cookies.NewWriter,
			middleware.NewAuthMiddleware,
			middleware.NewAutoRefreshMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewOAuthHandler,
			handler.NewRecoveryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startJanitor(*persistence.Janitor) {}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
