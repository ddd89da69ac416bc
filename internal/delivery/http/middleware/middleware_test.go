package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"lensauth/config"
	deliverycontext "lensauth/internal/delivery/context"
	"lensauth/internal/delivery/http/cookies"
	"lensauth/internal/delivery/http/response"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/entity"
	"lensauth/internal/domain/service"
	"lensauth/internal/infra/auth"
	mockService "lensauth/internal/mocks/service"
	mockUsecase "lensauth/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "middleware_access_secret_for_tests"
	cfg.SecretKey.Refresh = "middleware_refresh_secret_for_tests"
	cfg.Token = &config.TokenConfig{AccessTTL: 900 * time.Second, RefreshTTL: 120 * time.Hour}

	return cfg
}

type fixture struct {
	clock       *testClock
	tokens      service.TokenService
	coordinator *mockUsecase.MockRefreshCoordinator
	echo        *echo.Echo
	identity    *entity.Identity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := &testClock{now: time.Now()}
	cfg := testConfig()
	tokens, err := auth.NewJWTServiceWithClock(cfg, clock.Now)
	require.NoError(t, err)

	f := &fixture{
		clock:       clock,
		tokens:      tokens,
		coordinator: mockUsecase.NewMockRefreshCoordinator(t),
		echo:        echo.New(),
		identity: &entity.Identity{
			AccountID: uuid.New(),
			Email:     "grace@example.com",
			FullName:  "Grace Hopper",
			IsActive:  true,
			Roles:     entity.Roles{entity.RoleUser},
		},
	}

	autoRefresh := NewAutoRefreshMiddleware(AutoRefreshParams{
		Gate:        auth.NewExpiryGateWithClock(clock.Now),
		Coordinator: f.coordinator,
		Cookies:     cookies.NewWriter(cfg),
	})
	authMiddleware := NewAuthMiddleware(tokens)

	f.echo.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	f.echo.GET("/guarded", Require(func(c echo.Context, identity *entity.Identity) error {
		return response.Success(c, http.StatusOK, map[string]string{
			"accountId":    identity.AccountID.String(),
			"refreshToken": cookies.Value(c, cookies.RefreshToken),
		})
	}), autoRefresh.Handle, authMiddleware.Authenticate)
	f.echo.GET("/bearer-only", Require(func(c echo.Context, identity *entity.Identity) error {
		return response.Success(c, http.StatusOK, identity.Email)
	}), authMiddleware.Authenticate)

	return f
}

func (f *fixture) sign(t *testing.T, kind entity.TokenKind) string {
	t.Helper()

	signed, err := f.tokens.Sign(kind, f.identity)
	require.NoError(t, err)

	return signed.Value
}

func (f *fixture) pair(t *testing.T) *entity.TokenPair {
	t.Helper()

	access, err := f.tokens.Sign(entity.TokenKindAccess, f.identity)
	require.NoError(t, err)
	refresh, err := f.tokens.Sign(entity.TokenKindRefresh, f.identity)
	require.NoError(t, err)

	return &entity.TokenPair{
		AccessToken:      access.Value,
		RefreshToken:     refresh.Value,
		AccessExpiresAt:  access.ExpiresAt,
		RefreshExpiresAt: refresh.ExpiresAt,
	}
}

func (f *fixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func cookieMap(rec *httptest.ResponseRecorder) map[string][]*http.Cookie {
	out := map[string][]*http.Cookie{}
	for _, cookie := range rec.Result().Cookies() {
		out[cookie.Name] = append(out[cookie.Name], cookie)
	}

	return out
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	f := newFixture(t)

	t.Run("valid bearer exposes the identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bearer-only", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+f.sign(t, entity.TokenKindAccess))

		rec := f.serve(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "grace@example.com")
	})

	rejected := map[string]string{
		"missing header":  "",
		"no bearer":       f.sign(t, entity.TokenKindAccess),
		"empty bearer":    "Bearer ",
		"garbage":         "Bearer not-a-jwt",
		"refresh as auth": "Bearer " + f.sign(t, entity.TokenKindRefresh),
	}
	for name, header := range rejected {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/bearer-only", nil)
			if header != "" {
				req.Header.Set(echo.HeaderAuthorization, header)
			}

			rec := f.serve(req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, "UNAUTHENTICATED", info.Code)
			assert.Nil(t, info.Details)
		})
	}

	t.Run("expired bearer", func(t *testing.T) {
		token := f.sign(t, entity.TokenKindAccess)
		f.clock.Advance(16 * time.Minute)

		req := httptest.NewRequest(http.MethodGet, "/bearer-only", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, f.serve(req).Code)
	})
}

func TestRequire_WithoutIdentity(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	called := false
	err := Require(func(echo.Context, *entity.Identity) error {
		called = true

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.False(t, called)
}

func TestRequire_PassesStoredIdentity(t *testing.T) {
	e := echo.New()
	identity := &entity.Identity{AccountID: uuid.New()}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(deliverycontext.WithIdentity(req.Context(), identity))
	c := e.NewContext(req, httptest.NewRecorder())

	var got *entity.Identity
	err := Require(func(_ echo.Context, id *entity.Identity) error {
		got = id

		return nil
	})(c)

	require.NoError(t, err)
	assert.Same(t, identity, got)
}

func TestAutoRefreshMiddleware_ValidAccessCookie(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: cookies.AccessToken, Value: f.sign(t, entity.TokenKindAccess)})
	req.AddCookie(&http.Cookie{Name: cookies.RefreshToken, Value: "untouched"})

	rec := f.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	assert.Contains(t, rec.Body.String(), f.identity.AccountID.String())
}

func TestAutoRefreshMiddleware_ExpiredAccessRenewsOnce(t *testing.T) {
	f := newFixture(t)

	oldAccess := f.sign(t, entity.TokenKindAccess)
	oldRefresh := f.sign(t, entity.TokenKindRefresh)
	f.clock.Advance(901 * time.Second)
	next := f.pair(t)

	f.coordinator.EXPECT().Refresh(mock.Anything, oldRefresh).Return(next, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: cookies.AccessToken, Value: oldAccess})
	req.AddCookie(&http.Cookie{Name: cookies.RefreshToken, Value: oldRefresh})

	rec := f.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)

	set := cookieMap(rec)
	require.Len(t, set[cookies.AccessToken], 1)
	require.Len(t, set[cookies.RefreshToken], 1)
	assert.Len(t, rec.Result().Cookies(), 2)

	access := set[cookies.AccessToken][0]
	assert.Equal(t, next.AccessToken, access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, "/", access.Path)
	assert.InDelta(t, time.Until(next.AccessExpiresAt).Seconds(), float64(access.MaxAge), 5)

	refresh := set[cookies.RefreshToken][0]
	assert.Equal(t, next.RefreshToken, refresh.Value)
	assert.InDelta(t, time.Until(next.RefreshExpiresAt).Seconds(), float64(refresh.MaxAge), 5)

	// The handler already sees the renewed refresh token.
	assert.Contains(t, rec.Body.String(), next.RefreshToken)
}

func TestAutoRefreshMiddleware_BearerPassthrough(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+f.sign(t, entity.TokenKindAccess))

	rec := f.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAutoRefreshMiddleware_MissingRefreshCookie(t *testing.T) {
	f := newFixture(t)

	expired := f.sign(t, entity.TokenKindAccess)
	f.clock.Advance(time.Hour)

	for name, req := range map[string]*http.Request{
		"no cookies":     httptest.NewRequest(http.MethodGet, "/guarded", nil),
		"expired access": httptest.NewRequest(http.MethodGet, "/guarded", nil),
	} {
		if name == "expired access" {
			req.AddCookie(&http.Cookie{Name: cookies.AccessToken, Value: expired})
		}

		rec := f.serve(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
		info := decodeError(t, rec)
		assert.Equal(t, "REFRESH_TOKEN_MISSING", info.Code, name)
		assert.Equal(t, "refresh token missing", info.Message, name)
	}
}

func TestAutoRefreshMiddleware_RefreshFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"revoked", domainerrors.ErrRefreshTokenRevoked, http.StatusUnauthorized, "REFRESH_TOKEN_REVOKED"},
		{"expired", domainerrors.ErrRefreshTokenExpired, http.StatusUnauthorized, "REFRESH_TOKEN_EXPIRED"},
		{"invalid", domainerrors.ErrRefreshTokenInvalid, http.StatusUnauthorized, "REFRESH_TOKEN_INVALID"},
		{"account missing", domainerrors.ErrAccountMissing, http.StatusUnauthorized, "ACCOUNT_MISSING"},
		{"account inactive", domainerrors.ErrAccountInactive, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{
			"storage",
			domainerrors.NewDatabaseExecuteError(errors.New("connection refused on 10.0.0.7"), "find refresh credential"),
			http.StatusInternalServerError,
			"DATABASE_EXECUTE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.coordinator.EXPECT().Refresh(mock.Anything, "stale-refresh").Return(nil, tt.err).Once()

			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			req.AddCookie(&http.Cookie{Name: cookies.RefreshToken, Value: "stale-refresh"})

			rec := f.serve(req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Nil(t, info.Details)
			assert.NotContains(t, rec.Body.String(), "10.0.0.7")
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "app error keeps 4xx details",
			err:         errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("email is required"), "bind"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "email is required",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("nil pointer somewhere"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.wantDetails, info.Details)
			assert.NotContains(t, rec.Body.String(), "nil pointer")
		})
	}
}

func TestNewRateLimiter(t *testing.T) {
	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}

	t.Run("disabled", func(t *testing.T) {
		e := echo.New()
		e.POST("/login", handler, NewRateLimiter(&config.Config{}))

		for range 5 {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
			assert.Equal(t, http.StatusNoContent, rec.Code)
		}
	})

	t.Run("denies past the burst", func(t *testing.T) {
		cfg := &config.Config{RateLimit: &config.RateLimitConfig{
			Enabled:   true,
			Rate:      0.01,
			Burst:     2,
			ExpiresIn: time.Minute,
		}}
		e := echo.New()
		e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
		e.POST("/login", handler, NewRateLimiter(cfg))

		codes := make([]int, 0, 3)
		for range 3 {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
	})
}

func TestAutoRefreshMiddleware_FollowsGateDecision(t *testing.T) {
	renewed := &entity.TokenPair{
		AccessToken:      "renewed-access",
		RefreshToken:     "renewed-refresh",
		AccessExpiresAt:  time.Now().Add(15 * time.Minute),
		RefreshExpiresAt: time.Now().Add(time.Hour),
	}

	tests := []struct {
		name        string
		setup       func(gate *mockService.MockExpiryGate, coordinator *mockUsecase.MockRefreshCoordinator)
		wantBearer  string
		wantCookies int
	}{
		{
			name: "live access cookie becomes the bearer",
			setup: func(gate *mockService.MockExpiryGate, _ *mockUsecase.MockRefreshCoordinator) {
				gate.EXPECT().IsExpired("cookie-access").Return(false).Once()
			},
			wantBearer: "Bearer cookie-access",
		},
		{
			name: "live bearer header is kept",
			setup: func(gate *mockService.MockExpiryGate, _ *mockUsecase.MockRefreshCoordinator) {
				gate.EXPECT().IsExpired("cookie-access").Return(true).Once()
				gate.EXPECT().IsExpired("header-access").Return(false).Once()
			},
			wantBearer: "Bearer header-access",
		},
		{
			name: "both stale renews from the refresh cookie",
			setup: func(gate *mockService.MockExpiryGate, coordinator *mockUsecase.MockRefreshCoordinator) {
				gate.EXPECT().IsExpired("cookie-access").Return(true).Once()
				gate.EXPECT().IsExpired("header-access").Return(true).Once()
				coordinator.EXPECT().Refresh(mock.Anything, "cookie-refresh").Return(renewed, nil).Once()
			},
			wantBearer:  "Bearer renewed-access",
			wantCookies: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := mockService.NewMockExpiryGate(t)
			coordinator := mockUsecase.NewMockRefreshCoordinator(t)
			tt.setup(gate, coordinator)

			autoRefresh := NewAutoRefreshMiddleware(AutoRefreshParams{
				Gate:        gate,
				Coordinator: coordinator,
				Cookies:     cookies.NewWriter(testConfig()),
			})

			var seenBearer string
			e := echo.New()
			c := e.NewContext(func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set(echo.HeaderAuthorization, "Bearer header-access")
				req.AddCookie(&http.Cookie{Name: cookies.AccessToken, Value: "cookie-access"})
				req.AddCookie(&http.Cookie{Name: cookies.RefreshToken, Value: "cookie-refresh"})

				return req
			}(), httptest.NewRecorder())

			err := autoRefresh.Handle(func(c echo.Context) error {
				seenBearer = c.Request().Header.Get(echo.HeaderAuthorization)

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantBearer, seenBearer)
			assert.Len(t, c.Response().Header().Values("Set-Cookie"), tt.wantCookies)
		})
	}
}
