// Package middleware holds the echo middlewares guarding the HTTP routes.
package middleware

import (
	"strings"

	deliverycontext "lensauth/internal/delivery/context"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/entity"
	"lensauth/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthenticatedHandlerFunc is a handler that receives the verified identity explicitly.
type AuthenticatedHandlerFunc func(c echo.Context, identity *entity.Identity) error

// AuthMiddleware verifies access tokens. It never touches storage.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects the request unless it carries a valid access token as bearer.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.tokenSvc.Verify(entity.TokenKindAccess, token)
		if err != nil {
			return domainerrors.ErrUnauthenticated
		}

		req := c.Request()
		c.SetRequest(req.WithContext(deliverycontext.WithIdentity(req.Context(), claims.Identity())))

		return next(c)
	}
}

// Require adapts an AuthenticatedHandlerFunc. It must run behind Authenticate.
func Require(h AuthenticatedHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := deliverycontext.IdentityFrom(c.Request().Context())
		if identity == nil {
			return domainerrors.ErrUnauthenticated
		}

		return h(c, identity)
	}
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}

func setBearer(c echo.Context, token string) {
	c.Request().Header.Set(echo.HeaderAuthorization, bearerPrefix+token)
}
