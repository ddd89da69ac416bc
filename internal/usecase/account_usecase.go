package usecase

import (
	"context"

	"lensauth/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a password account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries the editable profile fields. Empty strings clear a field.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	PhoneNo   string
	Avatar    string
}

// --- Output DTOs ---

// LoginOutput returns the issued pair together with the signed-in account.
type LoginOutput struct {
	Account *entity.Account
	Tokens  *entity.TokenPair
}

// AccountUsecase covers password sign-in, provider sign-in and profile access.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// LoginWithProvider completes an authorization-code flow and signs the account in.
	LoginWithProvider(ctx context.Context, code string) (*LoginOutput, error)

	// Logout blacklists the refresh record. Unknown tokens are not an error.
	Logout(ctx context.Context, refreshToken string) error

	// Exists reports whether an account is registered under email.
	Exists(ctx context.Context, email string) (bool, error)

	CurrentAccount(ctx context.Context, identity *entity.Identity) (*entity.Account, error)
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	UpdateProfile(ctx context.Context, identity *entity.Identity, input *UpdateProfileInput) (*entity.Account, error)

	// ListAccounts is restricted to admins.
	ListAccounts(ctx context.Context, identity *entity.Identity, limit, offset int) ([]*entity.Account, error)
}
