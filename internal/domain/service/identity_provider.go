package service

import (
	"context"

	"lensauth/internal/domain/entity"
)

// IdentityProvider runs the authorization-code flow of an external provider.
type IdentityProvider interface {
	// AuthorizationURL returns where to send the browser to start sign-in.
	AuthorizationURL(state string) string

	// Exchange trades an authorization code for a verified profile.
	Exchange(ctx context.Context, code string) (*entity.ProviderProfile, error)

	// Provider names the provider.
	Provider() entity.ProviderType
}
