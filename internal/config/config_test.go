package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != ":8080" {
		t.Fatalf("expected default listen, got %q", cfg.Listen)
	}
	if cfg.Backend.BaseURL != "http://localhost:5000" {
		t.Fatalf("expected default backend url, got %q", cfg.Backend.BaseURL)
	}
	if cfg.Cookie.Name != "novella_session" {
		t.Fatalf("expected default cookie name, got %q", cfg.Cookie.Name)
	}
	if cfg.Cookie.TTL != 7*24*time.Hour {
		t.Fatalf("expected default ttl, got %s", cfg.Cookie.TTL)
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "novella.yml")
	body := []byte("listen: \":9000\"\nbackend:\n  base_url: http://file.example\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("NOVELLA_BACKEND_URL", "http://env.example")
	t.Setenv("NOVELLA_SESSION_TTL", "24h")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != ":9000" {
		t.Fatalf("expected file listen, got %q", cfg.Listen)
	}
	if cfg.Backend.BaseURL != "http://env.example" {
		t.Fatalf("expected env to win over file, got %q", cfg.Backend.BaseURL)
	}
	if cfg.Cookie.TTL != 24*time.Hour {
		t.Fatalf("expected 24h ttl, got %s", cfg.Cookie.TTL)
	}
}

func TestCookieSecureByEnv(t *testing.T) {
	t.Setenv("NOVELLA_COOKIE_SECURE", "")
	if _, forced := CookieSecureByEnv(); forced {
		t.Fatalf("expected unforced when unset")
	}
	t.Setenv("NOVELLA_COOKIE_SECURE", "true")
	secure, forced := CookieSecureByEnv()
	if !secure || !forced {
		t.Fatalf("expected forced secure, got secure=%v forced=%v", secure, forced)
	}
	t.Setenv("NOVELLA_COOKIE_SECURE", "no")
	secure, forced = CookieSecureByEnv()
	if secure || !forced {
		t.Fatalf("expected forced insecure, got secure=%v forced=%v", secure, forced)
	}
}
