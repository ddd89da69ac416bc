package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lensauth/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestIdentityRoundTrip(t *testing.T) {
	assert.Nil(t, IdentityFrom(context.Background()))

	identity := &entity.Identity{AccountID: uuid.New(), Email: "ada@example.com"}
	ctx := WithIdentity(context.Background(), identity)

	assert.Same(t, identity, IdentityFrom(ctx))
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetRequestID_FallsBackToRequestContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "from-ctx", GetRequestID(c))
}

func TestKeysDoNotCollideWithStringKeys(t *testing.T) {
	//nolint:staticcheck // a plain string key is exactly what must not match
	ctx := context.WithValue(context.Background(), "request_id", "foreign")

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Nil(t, IdentityFrom(context.WithValue(ctx, "identity", &entity.Identity{})))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
