package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"lensauth/config"
	"lensauth/internal/delivery/http/cookies"
	"lensauth/internal/delivery/http/validator"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/entity"
	"lensauth/internal/infra/auth/google"
	mockService "lensauth/internal/mocks/service"
	mockUsecase "lensauth/internal/mocks/usecase"
	"lensauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func handlerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "handler_access_secret"
	cfg.SecretKey.Refresh = "handler_refresh_secret"
	cfg.HTTP.FrontendBaseURL = "https://shop.example.com/"

	return cfg
}

func testPair() *entity.TokenPair {
	now := time.Now()

	return &entity.TokenPair{
		AccessToken:      "access-token",
		RefreshToken:     "refresh-token",
		AccessExpiresAt:  now.Add(15 * time.Minute),
		RefreshExpiresAt: now.Add(120 * time.Hour),
	}
}

func TestOAuthHandler_GoogleLogin(t *testing.T) {
	cfg := handlerConfig()
	provider := mockService.NewMockIdentityProvider(t)
	provider.EXPECT().AuthorizationURL(mock.AnythingOfType("string")).
		RunAndReturn(func(state string) string {
			return "https://accounts.example.com/o/oauth2/auth?state=" + url.QueryEscape(state)
		}).Once()

	h := NewOAuthHandler(OAuthHandlerParams{
		Provider:  provider,
		State:     google.NewStateSigner(cfg),
		AccountUC: mockUsecase.NewMockAccountUsecase(t),
		Cookies:   cookies.NewWriter(cfg),
		Config:    cfg,
	})

	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/v1/api/auth/google", nil), rec)

	require.NoError(t, h.GoogleLogin(c))

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderLocation), "https://accounts.example.com/"))

	set := rec.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, cookies.OAuthState, set[0].Name)
	assert.NotEmpty(t, set[0].Value)
	assert.Equal(t, http.SameSiteLaxMode, set[0].SameSite)
	assert.True(t, set[0].HttpOnly)
}

func TestOAuthHandler_GoogleLogin_NoProvider(t *testing.T) {
	cfg := handlerConfig()
	h := NewOAuthHandler(OAuthHandlerParams{
		State:     google.NewStateSigner(cfg),
		AccountUC: mockUsecase.NewMockAccountUsecase(t),
		Cookies:   cookies.NewWriter(cfg),
		Config:    cfg,
	})

	c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.ErrorIs(t, h.GoogleLogin(c), domainerrors.ErrOAuthFailed)
}

func TestOAuthHandler_GoogleCallback(t *testing.T) {
	cfg := handlerConfig()
	signer := google.NewStateSigner(cfg)
	state, nonce, err := signer.Issue()
	require.NoError(t, err)

	callback := func(query, nonceCookie string) (*httptest.ResponseRecorder, echo.Context) {
		req := httptest.NewRequest(http.MethodGet, "/v1/api/auth/google/callback?"+query, nil)
		if nonceCookie != "" {
			req.AddCookie(&http.Cookie{Name: cookies.OAuthState, Value: nonceCookie})
		}
		rec := httptest.NewRecorder()

		return rec, newTestEcho().NewContext(req, rec)
	}

	newHandler := func(accountUC usecase.AccountUsecase) *OAuthHandler {
		return NewOAuthHandler(OAuthHandlerParams{
			Provider:  mockService.NewMockIdentityProvider(t),
			State:     signer,
			AccountUC: accountUC,
			Cookies:   cookies.NewWriter(cfg),
			Config:    cfg,
		})
	}

	t.Run("success sets cookies and redirects", func(t *testing.T) {
		accountUC := mockUsecase.NewMockAccountUsecase(t)
		accountUC.EXPECT().LoginWithProvider(mock.Anything, "auth-code").
			Return(&usecase.LoginOutput{Account: &entity.Account{ID: uuid.New()}, Tokens: testPair()}, nil).Once()

		rec, c := callback(url.Values{"state": {state}, "code": {"auth-code"}}.Encode(), nonce)

		require.NoError(t, newHandler(accountUC).GoogleCallback(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://shop.example.com/", rec.Header().Get(echo.HeaderLocation))

		byName := map[string]*http.Cookie{}
		for _, cookie := range rec.Result().Cookies() {
			byName[cookie.Name] = cookie
		}
		assert.Equal(t, "access-token", byName[cookies.AccessToken].Value)
		assert.Equal(t, "refresh-token", byName[cookies.RefreshToken].Value)
		assert.Empty(t, byName[cookies.OAuthState].Value)
	})

	t.Run("state from another browser", func(t *testing.T) {
		rec, c := callback(url.Values{"state": {state}, "code": {"auth-code"}}.Encode(), "other-nonce")

		err := newHandler(mockUsecase.NewMockAccountUsecase(t)).GoogleCallback(c)

		assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
		for _, cookie := range rec.Result().Cookies() {
			assert.NotEqual(t, cookies.AccessToken, cookie.Name)
		}
	})

	t.Run("missing state cookie", func(t *testing.T) {
		_, c := callback(url.Values{"state": {state}, "code": {"auth-code"}}.Encode(), "")

		err := newHandler(mockUsecase.NewMockAccountUsecase(t)).GoogleCallback(c)

		assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
	})

	t.Run("provider declined", func(t *testing.T) {
		_, c := callback(url.Values{"error": {"access_denied"}}.Encode(), nonce)

		err := newHandler(mockUsecase.NewMockAccountUsecase(t)).GoogleCallback(c)

		assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
	})

	t.Run("login failure propagates", func(t *testing.T) {
		accountUC := mockUsecase.NewMockAccountUsecase(t)
		accountUC.EXPECT().LoginWithProvider(mock.Anything, "bad-code").Return(nil, domainerrors.ErrOAuthFailed).Once()

		_, c := callback(url.Values{"state": {state}, "code": {"bad-code"}}.Encode(), nonce)

		assert.ErrorIs(t, newHandler(accountUC).GoogleCallback(c), domainerrors.ErrOAuthFailed)
	})
}

func TestRecoveryHandler_VerifyOTP(t *testing.T) {
	accountID, sessionID := uuid.New(), uuid.New()

	t.Run("opens a session", func(t *testing.T) {
		recoveryUC := mockUsecase.NewMockRecoveryUsecase(t)
		recoveryUC.EXPECT().VerifyCode(mock.Anything, accountID, "123456").
			Return(&usecase.VerifyCodeOutput{SessionID: sessionID, AccountID: accountID}, nil).Once()

		rec := httptest.NewRecorder()
		c := newTestEcho().NewContext(jsonRequest(http.MethodPost, "/v1/api/verify-otp",
			`{"accountId":"`+accountID.String()+`","code":"123456"}`), rec)

		require.NoError(t, NewRecoveryHandler(recoveryUC).VerifyOTP(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), sessionID.String())
	})

	t.Run("rejects malformed input before the usecase", func(t *testing.T) {
		c := newTestEcho().NewContext(jsonRequest(http.MethodPost, "/v1/api/verify-otp",
			`{"accountId":"not-a-uuid","code":"12ab"}`), httptest.NewRecorder())

		err := NewRecoveryHandler(mockUsecase.NewMockRecoveryUsecase(t)).VerifyOTP(c)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestRecoveryHandler_ValidateSession(t *testing.T) {
	sessionID := uuid.New()

	t.Run("live session", func(t *testing.T) {
		recoveryUC := mockUsecase.NewMockRecoveryUsecase(t)
		recoveryUC.EXPECT().ValidateSession(mock.Anything, sessionID).Return(true, nil).Once()

		rec := httptest.NewRecorder()
		c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/v1/api/validate-session?sid="+sessionID.String(), nil), rec)

		require.NoError(t, NewRecoveryHandler(recoveryUC).ValidateSession(c))
		assert.Contains(t, rec.Body.String(), `"isValid":true`)
	})

	t.Run("expired session", func(t *testing.T) {
		recoveryUC := mockUsecase.NewMockRecoveryUsecase(t)
		recoveryUC.EXPECT().ValidateSession(mock.Anything, sessionID).Return(false, nil).Once()

		c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/?sid="+sessionID.String(), nil), httptest.NewRecorder())

		assert.ErrorIs(t, NewRecoveryHandler(recoveryUC).ValidateSession(c), domainerrors.ErrRecoverySessionInvalid)
	})

	t.Run("bad sid", func(t *testing.T) {
		c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/?sid=42", nil), httptest.NewRecorder())

		assert.ErrorIs(t, NewRecoveryHandler(mockUsecase.NewMockRecoveryUsecase(t)).ValidateSession(c), domainerrors.ErrValidationFailed)
	})
}

func TestRecoveryHandler_ResetPassword(t *testing.T) {
	sessionID := uuid.New()
	recoveryUC := mockUsecase.NewMockRecoveryUsecase(t)
	recoveryUC.EXPECT().ResetPassword(mock.Anything, &usecase.ResetPasswordInput{
		SessionID:       sessionID,
		Password:        "NewPassw0rd",
		ConfirmPassword: "NewPassw0rd",
	}).Return(nil).Once()

	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(jsonRequest(http.MethodPut, "/v1/api/resetPassword",
		`{"sid":"`+sessionID.String()+`","password":"NewPassw0rd","confirmPassword":"NewPassw0rd"}`), rec)

	require.NoError(t, NewRecoveryHandler(recoveryUC).ResetPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecoveryHandler_LogoutSessionNotFound(t *testing.T) {
	sessionID := uuid.New()
	recoveryUC := mockUsecase.NewMockRecoveryUsecase(t)
	recoveryUC.EXPECT().InvalidateSession(mock.Anything, sessionID).Return(domainerrors.ErrRecoverySessionNotFound).Once()

	c := newTestEcho().NewContext(jsonRequest(http.MethodPost, "/v1/api/logout-session",
		`{"sid":"`+sessionID.String()+`"}`), httptest.NewRecorder())

	assert.ErrorIs(t, NewRecoveryHandler(recoveryUC).LogoutSession(c), domainerrors.ErrRecoverySessionNotFound)
}

func TestAccountHandler_Authenticate(t *testing.T) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	accountUC.EXPECT().Exists(mock.Anything, "ada@example.com").Return(true, nil).Once()
	accountUC.EXPECT().Exists(mock.Anything, "nobody@example.com").Return(false, nil).Once()

	h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, Cookies: cookies.NewWriter(handlerConfig())})

	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(jsonRequest(http.MethodPost, "/", `{"email":"ada@example.com"}`), rec)
	require.NoError(t, h.Authenticate(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c = newTestEcho().NewContext(jsonRequest(http.MethodPost, "/", `{"email":"nobody@example.com"}`), httptest.NewRecorder())
	assert.ErrorIs(t, h.Authenticate(c), domainerrors.ErrAccountNotFound)
}

func TestAccountHandler_ListAccountsQuery(t *testing.T) {
	identity := &entity.Identity{AccountID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	accountUC.EXPECT().ListAccounts(mock.Anything, identity, 10, 20).
		Return([]*entity.Account{{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "$2a$secret"}}, nil).Once()

	h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, Cookies: cookies.NewWriter(handlerConfig())})

	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/?limit=10&offset=20", nil), rec)
	require.NoError(t, h.ListAccounts(c, identity))
	assert.Contains(t, rec.Body.String(), "ada@example.com")
	assert.NotContains(t, rec.Body.String(), "$2a$secret")

	c = newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/?limit=-1", nil), httptest.NewRecorder())
	assert.ErrorIs(t, h.ListAccounts(c, identity), domainerrors.ErrValidationFailed)
}
