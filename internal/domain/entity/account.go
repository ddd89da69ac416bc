// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is a person who can sign in. Accounts are never hard-deleted;
// IsActive=false disables sign-in and renewal instead.
type Account struct {
	ID           uuid.UUID
	Email        string // Unique, stored lower-cased.
	PasswordHash string // bcrypt. Provider accounts hold the hash of a random placeholder.
	FirstName    string
	LastName     string
	FullName     string
	PhoneNo      string
	Avatar       string
	GoogleID     string // Provider subject of the account that bootstrapped it, if any.
	IsActive     bool
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}

// ComposeFullName joins first and last name the way profiles display them.
func ComposeFullName(firstName, lastName string) string {
	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}

// NormalizeEmail is applied to every email before lookup or storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Roles derives the role set carried in token claims.
func (a *Account) Roles() Roles {
	if a.IsAdmin {
		return Roles{RoleUser, RoleAdmin}
	}

	return Roles{RoleUser}
}

// Identity returns the snapshot embedded in issued tokens.
func (a *Account) Identity() *Identity {
	return &Identity{
		AccountID: a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		FullName:  a.FullName,
		Avatar:    a.Avatar,
		IsActive:  a.IsActive,
		Roles:     a.Roles(),
	}
}

// Identity is the decoded claims snapshot of a verified access token.
// It reflects the account at issue time, not the current row.
type Identity struct {
	AccountID uuid.UUID
	Email     string
	FirstName string
	LastName  string
	FullName  string
	Avatar    string
	IsActive  bool
	Roles     Roles
}

// IsAdmin reports whether the snapshot carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i.Roles.Contains(RoleAdmin)
}

// ProviderProfile is the verified profile returned by an external identity provider.
type ProviderProfile struct {
	Provider   ProviderType
	SubjectID  string
	Email      string
	GivenName  string
	FamilyName string
	Name       string
	Picture    string
}

// ProviderType names an external identity provider.
type ProviderType string

const (
	ProviderGoogle ProviderType = "google"
)
