package handler

import (
	"net/http"
	"strconv"

	"lensauth/internal/delivery/http/cookies"
	"lensauth/internal/delivery/http/response"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/entity"
	"lensauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC   usecase.AccountUsecase
	Coordinator usecase.RefreshCoordinator
	Cookies     *cookies.Writer
}

// AccountHandler serves password sign-in, token renewal and profile endpoints.
type AccountHandler struct {
	accountUC   usecase.AccountUsecase
	coordinator usecase.RefreshCoordinator
	cookies     *cookies.Writer
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC:   params.AccountUC,
		coordinator: params.Coordinator,
		cookies:     params.Cookies,
	}
}

// RegisterRequest represents the request body for a password sign-up.
type RegisterRequest struct {
	FirstName string `json:"firstname" validate:"required,max=64"`
	LastName  string `json:"lastname" validate:"max=64"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,max=72"`
}

// LoginRequest represents the request body for a password login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest lets API clients without cookies present the refresh token in the body.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdateProfileRequest represents the editable profile fields.
type UpdateProfileRequest struct {
	FirstName string `json:"firstname" validate:"required,max=64"`
	LastName  string `json:"lastname" validate:"max=64"`
	PhoneNo   string `json:"phoneNo" validate:"omitempty,max=32"`
	Avatar    string `json:"avatar" validate:"omitempty,url,max=2048"`
}

// AuthenticateRequest asks whether an email is registered.
type AuthenticateRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginResponse carries the signed-in account and, for API clients, the token pair.
type LoginResponse struct {
	Account *AccountView      `json:"account"`
	Tokens  *entity.TokenPair `json:"tokens"`
}

// Register handles the password sign-up request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, NewAccountView(account))
}

// Login handles the password login request and sets the token cookies.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetTokenPair(c, output.Tokens)

	return response.Success(c, http.StatusOK, &LoginResponse{
		Account: NewAccountView(output.Account),
		Tokens:  output.Tokens,
	})
}

// RefreshToken exchanges the refresh token for a new pair. The cookie wins over the body.
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	token := cookies.Value(c, cookies.RefreshToken)
	if token == "" {
		var req RefreshTokenRequest
		if err := c.Bind(&req); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
		}
		token = req.RefreshToken
	}
	if token == "" {
		return domainerrors.ErrRefreshTokenMissing
	}

	pair, err := h.coordinator.Refresh(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetTokenPair(c, pair)

	return response.Success(c, http.StatusOK, pair)
}

// Logout blacklists the current refresh token and clears both cookies.
func (h *AccountHandler) Logout(c echo.Context, _ *entity.Identity) error {
	token := cookies.Value(c, cookies.RefreshToken)
	if token == "" {
		var req RefreshTokenRequest
		if err := c.Bind(&req); err == nil {
			token = req.RefreshToken
		}
	}

	if err := h.accountUC.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.ClearTokenPair(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "logged out"})
}

// CurrentUser returns the account behind the access token.
func (h *AccountHandler) CurrentUser(c echo.Context, identity *entity.Identity) error {
	account, err := h.accountUC.CurrentAccount(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewAccountView(account))
}

// UpdateProfile saves the caller's profile fields.
func (h *AccountHandler) UpdateProfile(c echo.Context, identity *entity.Identity) error {
	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.accountUC.UpdateProfile(c.Request().Context(), identity, &usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		PhoneNo:   req.PhoneNo,
		Avatar:    req.Avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewAccountView(account))
}

// UserByEmail looks an account up by its email.
func (h *AccountHandler) UserByEmail(c echo.Context, _ *entity.Identity) error {
	email := c.Param("email")
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	account, err := h.accountUC.FindByEmail(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewAccountView(account))
}

// Authenticate reports whether the email belongs to a registered account.
func (h *AccountHandler) Authenticate(c echo.Context) error {
	var req AuthenticateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	exists, err := h.accountUC.Exists(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}
	if !exists {
		return domainerrors.ErrAccountNotFound
	}

	return c.NoContent(http.StatusNoContent)
}

// ListAccounts pages through all accounts. Admin only.
func (h *AccountHandler) ListAccounts(c echo.Context, identity *entity.Identity) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return err
	}

	accounts, err := h.accountUC.ListAccounts(c.Request().Context(), identity, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountViews(accounts))
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a non-negative integer")
	}

	return value, nil
}
