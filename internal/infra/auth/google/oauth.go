package google

import (
	"context"
	"log/slog"

	"lensauth/config"
	"lensauth/internal/domain/entity"
	"lensauth/internal/domain/service"
	"lensauth/internal/errors"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

var defaultScopes = []string{"openid", "email", "profile"}

// OAuthService runs Google's authorization-code flow and verifies the returned ID token.
type OAuthService struct {
	conf     *oauth2.Config
	validate idTokenValidator
	logger   *slog.Logger
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config, logger *slog.Logger) service.IdentityProvider {
	return newOAuthService(cfg, logger, googleoauth.Endpoint, idtoken.Validate)
}

func newOAuthService(cfg *config.Config, logger *slog.Logger, endpoint oauth2.Endpoint, validate idTokenValidator) *OAuthService {
	oauthCfg := cfg.GoogleOAuth
	if oauthCfg == nil {
		oauthCfg = &config.GoogleOAuthConfig{}
	}

	scopes := oauthCfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	return &OAuthService{
		conf: &oauth2.Config{
			ClientID:     oauthCfg.ClientID,
			ClientSecret: oauthCfg.ClientSecret,
			RedirectURL:  oauthCfg.RedirectURI,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		validate: validate,
		logger:   logger,
	}
}

// AuthorizationURL constructs the Google consent URL for the given state.
func (s *OAuthService) AuthorizationURL(state string) string {
	return s.conf.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for tokens and validates the ID token.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*entity.ProviderProfile, error) {
	if code == "" {
		return nil, errors.New("authorization code is empty")
	}

	token, err := s.conf.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("token response has no id_token")
	}

	payload, err := s.validate(ctx, rawIDToken, s.conf.ClientID)
	if err != nil {
		return nil, errors.Wrap(err, "id token verification failed")
	}

	profile, err := profileFromPayload(payload)
	if err != nil {
		return nil, errors.Wrap(err, "id token rejected")
	}

	s.logger.Debug("Google ID token verified",
		slog.String("subject", profile.SubjectID),
		slog.String("email", profile.Email),
	)

	return profile, nil
}

// Provider returns the OAuth provider type
func (s *OAuthService) Provider() entity.ProviderType {
	return entity.ProviderGoogle
}
