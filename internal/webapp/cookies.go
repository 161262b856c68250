package webapp

import (
	"net/http"
	"strings"
	"time"

	"github.com/yussufhh/Novella/internal/config"
	"github.com/yussufhh/Novella/internal/session"
)

// CookieService mints and reads the browser-session cookie. The cookie value
// is an opaque ID into the session store, never the backend token itself.
type CookieService struct {
	name     string
	sameSite http.SameSite
	ttl      time.Duration
}

func NewCookieService(cfg config.CookieConfig) *CookieService {
	return &CookieService{
		name:     cfg.Name,
		sameSite: parseSameSite(cfg.SameSite),
		ttl:      cfg.TTL,
	}
}

func parseSameSite(raw string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// BrowserID returns the session ID carried by the request, or "" when the
// browser has none yet.
func (c *CookieService) BrowserID(r *http.Request) string {
	cookie, err := r.Cookie(c.name)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// EnsureBrowserID returns the request's session ID, minting and setting a
// fresh one when the browser arrives without a cookie.
func (c *CookieService) EnsureBrowserID(w http.ResponseWriter, r *http.Request) string {
	if sid := c.BrowserID(r); sid != "" {
		return sid
	}
	sid := session.NewBrowserID()
	c.setCookie(w, r, sid)
	return sid
}

func (c *CookieService) setCookie(w http.ResponseWriter, r *http.Request, sid string) {
	secure := c.shouldUseSecureCookie(r)
	sameSite := c.sameSite
	if sameSite == http.SameSiteNoneMode && !secure {
		// Browsers reject SameSite=None without Secure.
		sameSite = http.SameSiteLaxMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    sid,
		Path:     "/",
		Expires:  time.Now().Add(c.ttl),
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	})
}

func (c *CookieService) shouldUseSecureCookie(r *http.Request) bool {
	if secure, forced := config.CookieSecureByEnv(); forced {
		return secure
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https")
}
