// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lensauth/config"
	"lensauth/internal/delivery/http/middleware"
	"lensauth/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	OAuthHandler    *handler.OAuthHandler
	RecoveryHandler *handler.RecoveryHandler
	AuthMiddleware  *middleware.AuthMiddleware
	AutoRefresh     *middleware.AutoRefreshMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	oauthHandler    *handler.OAuthHandler
	recoveryHandler *handler.RecoveryHandler
	authMiddleware  *middleware.AuthMiddleware
	autoRefresh     *middleware.AutoRefreshMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		oauthHandler:    params.OAuthHandler,
		recoveryHandler: params.RecoveryHandler,
		authMiddleware:  params.AuthMiddleware,
		autoRefresh:     params.AutoRefresh,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group(r.config.HTTP.BasePath)
	api.GET("/health", handler.HealthCheck)

	limited := middleware.NewRateLimiter(r.config)

	// Credential endpoints
	api.POST("/register", r.accountHandler.Register, limited)
	api.POST("/login", r.accountHandler.Login, limited)
	api.POST("/refreshtoken", r.accountHandler.RefreshToken, limited)
	api.POST("/authenticate", r.accountHandler.Authenticate, limited)

	// Provider sign-in
	api.GET("/auth/google", r.oauthHandler.GoogleLogin)
	api.GET("/auth/google/callback", r.oauthHandler.GoogleCallback)

	// Password recovery
	api.POST("/recovery", r.recoveryHandler.Recovery, limited)
	api.POST("/verify-otp", r.recoveryHandler.VerifyOTP, limited)
	api.GET("/validate-session", r.recoveryHandler.ValidateSession)
	api.POST("/logout-session", r.recoveryHandler.LogoutSession)
	api.PUT("/resetPassword", r.recoveryHandler.ResetPassword, limited)

	// Guarded routes renew an expired access cookie before authenticating.
	guard := []echo.MiddlewareFunc{r.autoRefresh.Handle, r.authMiddleware.Authenticate}
	api.POST("/logout", middleware.Require(r.accountHandler.Logout), guard...)
	api.GET("/users", middleware.Require(r.accountHandler.CurrentUser), guard...)
	api.PUT("/updateUserProfile", middleware.Require(r.accountHandler.UpdateProfile), guard...)
	api.GET("/user/email/:email", middleware.Require(r.accountHandler.UserByEmail), guard...)
	api.GET("/admin/accounts", middleware.Require(r.accountHandler.ListAccounts), guard...)
}
