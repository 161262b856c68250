package webapp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yussufhh/Novella/internal/config"
)

func testCookieConfig(sameSite string) config.CookieConfig {
	return config.CookieConfig{Name: "novella_session", SameSite: sameSite, TTL: time.Hour}
}

func TestCookieService_EnsureBrowserID_MintsOnce(t *testing.T) {
	svc := NewCookieService(testCookieConfig("lax"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sid := svc.EnsureBrowserID(rec, req)
	if sid == "" {
		t.Fatal("expected a minted session id")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != sid {
		t.Fatalf("expected one cookie carrying %q, got %+v", sid, cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}

	// A browser that already has the cookie keeps its id and gets no new one.
	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookies[0])
	if got := svc.EnsureBrowserID(rec2, req2); got != sid {
		t.Fatalf("expected existing id %q, got %q", sid, got)
	}
	if len(rec2.Result().Cookies()) != 0 {
		t.Fatal("expected no Set-Cookie for a returning browser")
	}
}

func TestCookieService_SameSiteNoneDowngradesWithoutSecure(t *testing.T) {
	svc := NewCookieService(testCookieConfig("none"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	svc.EnsureBrowserID(rec, req)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	if cookies[0].SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite downgrade to Lax for non-secure requests, got %v", cookies[0].SameSite)
	}
}

func TestCookieService_ForwardedProtoImpliesSecure(t *testing.T) {
	svc := NewCookieService(testCookieConfig("lax"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	svc.EnsureBrowserID(rec, req)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || !cookies[0].Secure {
		t.Fatalf("expected a Secure cookie behind an https proxy, got %+v", cookies)
	}
}
