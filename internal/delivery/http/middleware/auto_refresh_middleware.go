package middleware

import (
	"lensauth/internal/delivery/http/cookies"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/service"
	"lensauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AutoRefreshParams holds dependencies for AutoRefreshMiddleware, injected by Fx.
type AutoRefreshParams struct {
	fx.In

	Gate        service.ExpiryGate
	Coordinator usecase.RefreshCoordinator
	Cookies     *cookies.Writer
}

// AutoRefreshMiddleware turns the token cookies into a bearer credential,
// renewing the pair first when the access cookie has run out.
type AutoRefreshMiddleware struct {
	gate        service.ExpiryGate
	coordinator usecase.RefreshCoordinator
	cookies     *cookies.Writer
}

// NewAutoRefreshMiddleware is the constructor for AutoRefreshMiddleware.
func NewAutoRefreshMiddleware(params AutoRefreshParams) *AutoRefreshMiddleware {
	return &AutoRefreshMiddleware{
		gate:        params.Gate,
		coordinator: params.Coordinator,
		cookies:     params.Cookies,
	}
}

// Handle must be installed in front of AuthMiddleware.Authenticate.
func (m *AutoRefreshMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if access := cookies.Value(c, cookies.AccessToken); access != "" && !m.gate.IsExpired(access) {
			setBearer(c, access)

			return next(c)
		}

		if bearer, ok := BearerToken(c); ok && !m.gate.IsExpired(bearer) {
			return next(c)
		}

		refresh := cookies.Value(c, cookies.RefreshToken)
		if refresh == "" {
			return domainerrors.ErrRefreshTokenMissing
		}

		pair, err := m.coordinator.Refresh(c.Request().Context(), refresh)
		if err != nil {
			// A disabled account cannot renew; here that reads as signed out.
			if errors.Is(err, domainerrors.ErrAccountInactive) {
				return domainerrors.ErrUnauthenticated.WrapMessage("auto refresh: account inactive")
			}

			return errors.Wrap(err, "auto refresh")
		}

		m.cookies.SetTokenPair(c, pair)
		cookies.OverrideRequest(c.Request(), pair)
		setBearer(c, pair.AccessToken)

		return next(c)
	}
}
