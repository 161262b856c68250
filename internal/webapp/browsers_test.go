package webapp

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yussufhh/Novella/internal/session"
)

func testBrowserHandlers(t *testing.T, ttl time.Duration) *handlers {
	t.Helper()
	repo, err := session.NewFileRepo(t.TempDir())
	if err != nil {
		t.Fatalf("session repo: %v", err)
	}
	logger := log.New(io.Discard, "", 0)
	return &handlers{
		sessions:   session.NewStore(repo, logger),
		cookies:    NewCookieService(testCookieConfig("lax")),
		logger:     logger,
		browserTTL: ttl,
		browsers:   map[string]*browserEntry{},
	}
}

func TestBrowserFor_OnePerSession(t *testing.T) {
	h := testBrowserHandlers(t, time.Hour)

	a := h.browserFor("sid-a")
	if h.browserFor("sid-a") != a {
		t.Fatal("expected the same browser for a returning session")
	}
	if h.browserFor("sid-b") == a {
		t.Fatal("expected a separate browser per session")
	}
}

func TestBrowserFor_SweepsIdleSessions(t *testing.T) {
	h := testBrowserHandlers(t, time.Minute)

	h.browserFor("sid-idle")
	h.browsersMu.Lock()
	h.browsers["sid-idle"].lastSeen = time.Now().Add(-2 * time.Minute)
	h.browsersMu.Unlock()

	h.browserFor("sid-active")

	h.browsersMu.Lock()
	_, idleKept := h.browsers["sid-idle"]
	remaining := len(h.browsers)
	h.browsersMu.Unlock()
	if idleKept {
		t.Fatal("expected the idle session's browser to be swept")
	}
	if remaining != 1 {
		t.Fatalf("expected only the active browser to remain, have %d", remaining)
	}
}

func TestLogoutReleasesBrowser(t *testing.T) {
	h := testBrowserHandlers(t, time.Hour)

	mint := httptest.NewRecorder()
	sid := h.cookies.EnsureBrowserID(mint, httptest.NewRequest(http.MethodGet, "/", nil))
	h.browserFor(sid)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(mint.Result().Cookies()[0])
	rec := httptest.NewRecorder()
	h.handleLogout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("logout status = %d", rec.Code)
	}
	h.browsersMu.Lock()
	_, kept := h.browsers[sid]
	h.browsersMu.Unlock()
	if kept {
		t.Fatal("expected logout to release the session's browse state")
	}
}
