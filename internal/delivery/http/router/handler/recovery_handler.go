package handler

import (
	"net/http"

	"lensauth/internal/delivery/http/response"
	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecoveryHandler serves the password recovery flow.
type RecoveryHandler struct {
	recoveryUC usecase.RecoveryUsecase
}

// NewRecoveryHandler is the constructor for RecoveryHandler.
func NewRecoveryHandler(recoveryUC usecase.RecoveryUsecase) *RecoveryHandler {
	return &RecoveryHandler{recoveryUC: recoveryUC}
}

// RecoveryRequest starts recovery for an email.
type RecoveryRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest trades a mailed code for a reset session.
type VerifyOTPRequest struct {
	AccountID string `json:"accountId" validate:"required,uuid"`
	Code      string `json:"code" validate:"required,len=6,numeric"`
}

// SessionRequest names a reset session.
type SessionRequest struct {
	SessionID string `json:"sid" validate:"required,uuid"`
}

// ResetPasswordRequest sets a new password inside a reset session.
type ResetPasswordRequest struct {
	SessionID       string `json:"sid" validate:"required,uuid"`
	Password        string `json:"password" validate:"required,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Recovery mails a one-time code to the account.
func (h *RecoveryHandler) Recovery(c echo.Context) error {
	var req RecoveryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.recoveryUC.RequestCode(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"accountId": output.AccountID.String()})
}

// VerifyOTP consumes the code and opens a reset session.
func (h *RecoveryHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.recoveryUC.VerifyCode(c.Request().Context(), uuid.MustParse(req.AccountID), req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"sid":       output.SessionID.String(),
		"accountId": output.AccountID.String(),
	})
}

// ValidateSession reports whether ?sid= is a live reset session.
func (h *RecoveryHandler) ValidateSession(c echo.Context) error {
	sessionID, err := uuid.Parse(c.QueryParam("sid"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("sid must be a UUID")
	}

	valid, err := h.recoveryUC.ValidateSession(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}
	if !valid {
		return domainerrors.ErrRecoverySessionInvalid
	}

	return response.Success(c, http.StatusOK, map[string]bool{"isValid": true})
}

// LogoutSession abandons a reset session.
func (h *RecoveryHandler) LogoutSession(c echo.Context) error {
	var req SessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.recoveryUC.InvalidateSession(c.Request().Context(), uuid.MustParse(req.SessionID)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "session invalidated"})
}

// ResetPassword sets the new password and ends every signed-in session of the account.
func (h *RecoveryHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.recoveryUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		SessionID:       uuid.MustParse(req.SessionID),
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "password updated"})
}
