package config

import (
	"os"
	"strings"
	"time"
)

// Environment overrides take precedence over the YAML file.
func (c *Config) applyEnv() {
	if v := getEnv("NOVELLA_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := getEnv("NOVELLA_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := getEnv("NOVELLA_BACKEND_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if d := getEnvDuration("NOVELLA_BACKEND_TIMEOUT"); d > 0 {
		c.Backend.RequestTimeout = d
	}
	if v := getEnv("NOVELLA_COOKIE_NAME"); v != "" {
		c.Cookie.Name = v
	}
	if v := getEnv("NOVELLA_COOKIE_SAMESITE"); v != "" {
		c.Cookie.SameSite = v
	}
	if d := getEnvDuration("NOVELLA_SESSION_TTL"); d > 0 {
		c.Cookie.TTL = d
	}
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func getEnvDuration(key string) time.Duration {
	val := getEnv(key)
	if val == "" {
		return 0
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0
	}
	return d
}

// CookieSecureByEnv reports whether session cookies must be marked Secure.
// Unset means "decide per request" (TLS or X-Forwarded-Proto).
func CookieSecureByEnv() (secure, forced bool) {
	switch strings.ToLower(getEnv("NOVELLA_COOKIE_SECURE")) {
	case "1", "true", "yes":
		return true, true
	case "0", "false", "no":
		return false, true
	}
	return false, false
}
