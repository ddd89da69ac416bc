// Package cookies writes and reads the browser credentials of the HTTP delivery.
package cookies

import (
	"net/http"
	"strings"
	"time"

	"lensauth/config"
	"lensauth/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	AccessToken  = "accessToken"
	RefreshToken = "refreshToken"
	OAuthState   = "oauthState"
)

// Writer applies the configured cookie attributes to every credential cookie.
type Writer struct {
	secure   bool
	sameSite http.SameSite
	domain   string
	now      func() time.Time
}

// NewWriter reads the cookie section of the config.
func NewWriter(cfg *config.Config) *Writer {
	w := &Writer{secure: true, sameSite: http.SameSiteLaxMode, now: time.Now}
	if cfg.Cookie != nil {
		w.secure = cfg.Cookie.Secure
		w.sameSite = parseSameSite(cfg.Cookie.SameSite)
		w.domain = cfg.Cookie.Domain
	}

	return w
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// SetTokenPair writes exactly one Set-Cookie per token. MaxAge is the remaining lifetime in seconds.
func (w *Writer) SetTokenPair(c echo.Context, pair *entity.TokenPair) {
	c.SetCookie(w.cookie(AccessToken, pair.AccessToken, pair.AccessExpiresAt))
	c.SetCookie(w.cookie(RefreshToken, pair.RefreshToken, pair.RefreshExpiresAt))
}

// ClearTokenPair expires both token cookies in the browser.
func (w *Writer) ClearTokenPair(c echo.Context) {
	c.SetCookie(w.expired(AccessToken))
	c.SetCookie(w.expired(RefreshToken))
}

// SetOAuthState binds an OAuth flow to the browser that started it.
// It is always Lax: the provider redirect back is a cross-site top-level navigation.
func (w *Writer) SetOAuthState(c echo.Context, nonce string, ttl time.Duration) {
	cookie := w.cookie(OAuthState, nonce, w.now().Add(ttl))
	cookie.SameSite = http.SameSiteLaxMode
	c.SetCookie(cookie)
}

// ClearOAuthState removes the state cookie once the callback has consumed it.
func (w *Writer) ClearOAuthState(c echo.Context) {
	cookie := w.expired(OAuthState)
	cookie.SameSite = http.SameSiteLaxMode
	c.SetCookie(cookie)
}

func (w *Writer) cookie(name, value string, expiresAt time.Time) *http.Cookie {
	maxAge := int(expiresAt.Sub(w.now()).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   w.domain,
		Expires:  expiresAt,
		MaxAge:   maxAge,
		Secure:   w.secure,
		HttpOnly: true,
		SameSite: w.sameSite,
	}
}

func (w *Writer) expired(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   w.domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   w.secure,
		HttpOnly: true,
		SameSite: w.sameSite,
	}
}

// Value returns the named request cookie, or "" when absent.
func Value(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// OverrideRequest replaces the token cookies on the incoming request, so handlers
// running after a transparent refresh see the new pair.
func OverrideRequest(req *http.Request, pair *entity.TokenPair) {
	kept := make([]string, 0, len(req.Cookies())+2)
	for _, cookie := range req.Cookies() {
		if cookie.Name == AccessToken || cookie.Name == RefreshToken {
			continue
		}
		kept = append(kept, cookie.String())
	}
	kept = append(kept,
		(&http.Cookie{Name: AccessToken, Value: pair.AccessToken}).String(),
		(&http.Cookie{Name: RefreshToken, Value: pair.RefreshToken}).String(),
	)

	req.Header.Set("Cookie", strings.Join(kept, "; "))
}
