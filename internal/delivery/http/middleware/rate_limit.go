package middleware

import (
	"lensauth/config"
	domainerrors "lensauth/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiter limits credential endpoints per client IP. It is a no-op when disabled.
func NewRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	if cfg.RateLimit == nil || !cfg.RateLimit.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RateLimit.Rate),
		Burst:     cfg.RateLimit.Burst,
		ExpiresIn: cfg.RateLimit.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, _ error) error {
			return domainerrors.ErrTooManyRequests
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return domainerrors.ErrTooManyRequests
		},
	})
}
