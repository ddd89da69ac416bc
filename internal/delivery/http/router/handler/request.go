// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	domainerrors "lensauth/internal/domain/errors"
	"lensauth/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the request into req and runs the struct tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// AccountView is the public shape of an account. The password hash never leaves the service.
type AccountView struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstname"`
	LastName    string     `json:"lastname"`
	FullName    string     `json:"fullName"`
	PhoneNo     string     `json:"phoneNo,omitempty"`
	Avatar      string     `json:"avatar,omitempty"`
	IsActive    bool       `json:"isActive"`
	IsAdmin     bool       `json:"isAdmin"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// NewAccountView maps an account onto its public view.
func NewAccountView(account *entity.Account) *AccountView {
	return &AccountView{
		ID:          account.ID.String(),
		Email:       account.Email,
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		FullName:    account.FullName,
		PhoneNo:     account.PhoneNo,
		Avatar:      account.Avatar,
		IsActive:    account.IsActive,
		IsAdmin:     account.IsAdmin,
		CreatedAt:   account.CreatedAt,
		LastLoginAt: account.LastLoginAt,
	}
}

func newAccountViews(accounts []*entity.Account) []*AccountView {
	views := make([]*AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, NewAccountView(account))
	}

	return views
}
