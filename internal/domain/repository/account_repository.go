// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"lensauth/internal/domain/entity"
	"lensauth/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountEmailTaken is returned by Create when the email is already registered.
	ErrAccountEmailTaken = errors.New("account email already registered")
)

// AccountRepository persists accounts. Accounts are never deleted.
type AccountRepository interface {
	// FindByID returns ErrAccountNotFound when the account does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail returns ErrAccountNotFound when no account has the email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create inserts a new account, returning ErrAccountEmailTaken on a duplicate email.
	Create(ctx context.Context, account *entity.Account) error

	// Update saves every mutable field of an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// List returns accounts ordered by creation time.
	List(ctx context.Context, limit, offset int) ([]*entity.Account, error)
}
