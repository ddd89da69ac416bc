// Package context carries the per-request values lensauth threads through
// handlers and services: the request id, a logger tagged with it, and the
// identity verified from the access token.
package context

import (
	"context"
	"log/slog"

	"lensauth/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from and echoed to clients.
const HeaderXRequestID = echo.HeaderXRequestID

// echoRequestIDKey stores the request id in echo.Context, whose keys are strings.
const echoRequestIDKey = "lensauth.request_id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	identityKey
)

// GetRequestID returns the id set by the request id middleware. Without one it
// falls back to the request context, then to a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID records the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when no request id was attached.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault is what services use so that background calls without a
// request still log somewhere.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithIdentity stores the identity verified by the auth middleware.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom returns nil on unauthenticated requests.
func IdentityFrom(ctx context.Context) *entity.Identity {
	identity, _ := ctx.Value(identityKey).(*entity.Identity)

	return identity
}
