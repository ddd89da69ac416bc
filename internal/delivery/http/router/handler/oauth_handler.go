package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lensauth/config"
	deliverycontext "lensauth/internal/delivery/context"
	"lensauth/internal/delivery/http/cookies"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/service"
	"lensauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OAuthState issues and checks the signed state parameter of an authorization-code flow.
type OAuthState interface {
	Issue() (state, nonce string, err error)
	Verify(state, nonce string) error
	TTL() time.Duration
}

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	Provider  service.IdentityProvider `optional:"true"`
	State     OAuthState
	AccountUC usecase.AccountUsecase
	Cookies   *cookies.Writer
	Config    *config.Config
	Logger    *slog.Logger
}

// OAuthHandler runs the browser side of provider sign-in.
type OAuthHandler struct {
	provider    service.IdentityProvider
	state       OAuthState
	accountUC   usecase.AccountUsecase
	cookies     *cookies.Writer
	frontendURL string
	logger      *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler.
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	frontendURL := params.Config.HTTP.FrontendBaseURL
	if frontendURL == "" {
		frontendURL = "/"
	}

	return &OAuthHandler{
		provider:    params.Provider,
		state:       params.State,
		accountUC:   params.AccountUC,
		cookies:     params.Cookies,
		frontendURL: frontendURL,
		logger:      params.Logger,
	}
}

// GoogleLogin sends the browser to the provider's consent page.
func (h *OAuthHandler) GoogleLogin(c echo.Context) error {
	if h.provider == nil {
		return domainerrors.ErrOAuthFailed.WithDetails("identity provider is not configured")
	}

	state, nonce, err := h.state.Issue()
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetOAuthState(c, nonce, h.state.TTL())

	return c.Redirect(http.StatusTemporaryRedirect, h.provider.AuthorizationURL(state))
}

// GoogleCallback finishes the flow, sets the token cookies and returns to the frontend.
func (h *OAuthHandler) GoogleCallback(c echo.Context) error {
	nonce := cookies.Value(c, cookies.OAuthState)
	h.cookies.ClearOAuthState(c)

	if providerErr := c.QueryParam("error"); providerErr != "" {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Info("Provider sign-in declined", slog.String("reason", providerErr))

		return domainerrors.ErrOAuthFailed
	}

	if err := h.state.Verify(c.QueryParam("state"), nonce); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("OAuth state rejected", slog.Any("error", err))

		return domainerrors.ErrOAuthStateInvalid
	}

	output, err := h.accountUC.LoginWithProvider(c.Request().Context(), c.QueryParam("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetTokenPair(c, output.Tokens)

	return c.Redirect(http.StatusFound, h.frontendURL)
}
