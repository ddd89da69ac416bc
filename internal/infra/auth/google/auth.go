package google

import (
	"context"
	"strings"

	"lensauth/internal/domain/entity"
	"lensauth/internal/errors"

	"google.golang.org/api/idtoken"
)

var (
	googleIssuers = []string{"https://accounts.google.com", "accounts.google.com"}

	errEmailNotVerified = errors.New("email not verified")
)

// idTokenValidator matches idtoken.Validate so tests can substitute it.
type idTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// profileFromPayload maps a validated Google ID token onto a provider profile.
func profileFromPayload(payload *idtoken.Payload) (*entity.ProviderProfile, error) {
	if payload == nil {
		return nil, errors.New("empty id token payload")
	}

	issuerOK := false
	for _, iss := range googleIssuers {
		if payload.Issuer == iss {
			issuerOK = true

			break
		}
	}
	if !issuerOK {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return nil, errEmailNotVerified
	}

	email := stringClaim(payload.Claims, "email")
	if email == "" {
		return nil, errors.New("id token has no email claim")
	}

	return &entity.ProviderProfile{
		Provider:   entity.ProviderGoogle,
		SubjectID:  payload.Subject,
		Email:      email,
		GivenName:  stringClaim(payload.Claims, "given_name"),
		FamilyName: stringClaim(payload.Claims, "family_name"),
		Name:       stringClaim(payload.Claims, "name"),
		Picture:    stringClaim(payload.Claims, "picture"),
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return strings.TrimSpace(v)
}
