package google

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"lensauth/config"
	"lensauth/internal/domain/entity"
	"lensauth/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

func newTestConfig() *config.Config {
	return &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "test_client_id",
			ClientSecret: "test_secret",
			RedirectURI:  "http://localhost:8080/v1/api/auth/google/callback",
		},
	}
}

func newTokenServer(t *testing.T, idToken string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "provider-access",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idToken,
		})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func validPayload() *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: "test_client_id",
		Subject:  "google-sub-123",
		Expires:  time.Now().Add(time.Hour).Unix(),
		Claims: map[string]any{
			"email":          "ada@example.com",
			"email_verified": true,
			"given_name":     "Ada",
			"family_name":    "Lovelace",
			"name":           "Ada Lovelace",
			"picture":        "https://example.com/ada.png",
		},
	}
}

func TestOAuthService_AuthorizationURL(t *testing.T) {
	svc := NewOAuthService(newTestConfig(), slog.Default())

	raw := svc.AuthorizationURL("state-123")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "accounts.google.com", parsed.Host)
	q := parsed.Query()
	assert.Equal(t, "test_client_id", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
	assert.Equal(t, "http://localhost:8080/v1/api/auth/google/callback", q.Get("redirect_uri"))
	assert.Equal(t, entity.ProviderGoogle, svc.Provider())
}

func TestOAuthService_Exchange(t *testing.T) {
	srv := newTokenServer(t, "raw-id-token")
	endpoint := oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token", AuthStyle: oauth2.AuthStyleInParams}

	var gotToken, gotAudience string
	validate := func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotToken, gotAudience = token, audience

		return validPayload(), nil
	}

	svc := newOAuthService(newTestConfig(), slog.Default(), endpoint, validate)

	profile, err := svc.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "raw-id-token", gotToken)
	assert.Equal(t, "test_client_id", gotAudience)
	assert.Equal(t, &entity.ProviderProfile{
		Provider:   entity.ProviderGoogle,
		SubjectID:  "google-sub-123",
		Email:      "ada@example.com",
		GivenName:  "Ada",
		FamilyName: "Lovelace",
		Name:       "Ada Lovelace",
		Picture:    "https://example.com/ada.png",
	}, profile)
}

func TestOAuthService_ExchangeFailures(t *testing.T) {
	srv := newTokenServer(t, "raw-id-token")
	endpoint := oauth2.Endpoint{TokenURL: srv.URL + "/token", AuthStyle: oauth2.AuthStyleInParams}

	t.Run("bad code", func(t *testing.T) {
		svc := newOAuthService(newTestConfig(), slog.Default(), endpoint, func(context.Context, string, string) (*idtoken.Payload, error) {
			t.Fatal("validator must not run")

			return nil, nil
		})
		_, err := svc.Exchange(context.Background(), "bad-code")
		assert.Error(t, err)
	})

	t.Run("empty code", func(t *testing.T) {
		svc := newOAuthService(newTestConfig(), slog.Default(), endpoint, nil)
		_, err := svc.Exchange(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("invalid id token", func(t *testing.T) {
		svc := newOAuthService(newTestConfig(), slog.Default(), endpoint, func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("idtoken: invalid signature")
		})
		_, err := svc.Exchange(context.Background(), "good-code")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "id token verification failed")
	})

	t.Run("unverified email", func(t *testing.T) {
		svc := newOAuthService(newTestConfig(), slog.Default(), endpoint, func(context.Context, string, string) (*idtoken.Payload, error) {
			p := validPayload()
			p.Claims["email_verified"] = false

			return p, nil
		})
		_, err := svc.Exchange(context.Background(), "good-code")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errEmailNotVerified))
	})
}

func TestProfileFromPayload_RejectsForeignIssuer(t *testing.T) {
	p := validPayload()
	p.Issuer = "https://evil.example.com"

	_, err := profileFromPayload(p)
	assert.Error(t, err)
}

func TestStateSigner(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.State = "state-secret"
	signer := NewStateSigner(cfg)
	now := time.Now()
	signer.now = func() time.Time { return now }

	state, nonce, err := signer.Issue()
	require.NoError(t, err)

	assert.NoError(t, signer.Verify(state, nonce))
	assert.Error(t, signer.Verify(state, "other-nonce"))
	assert.Error(t, signer.Verify("", nonce))
	assert.Error(t, signer.Verify(state+"x", nonce))

	now = now.Add(stateTTL + time.Second)
	assert.Error(t, signer.Verify(state, nonce))
}
