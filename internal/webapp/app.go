// Package webapp assembles the HTTP surface: server-rendered pages, the JSON
// API that fronts the rentals backend, static assets, and health probes.
package webapp

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/yussufhh/Novella/internal/config"
	"github.com/yussufhh/Novella/internal/dashboard"
	"github.com/yussufhh/Novella/internal/gateway"
	"github.com/yussufhh/Novella/internal/httpmw"
	"github.com/yussufhh/Novella/internal/metrics"
	"github.com/yussufhh/Novella/internal/session"
	"github.com/yussufhh/Novella/static"
	"github.com/yussufhh/Novella/ui/page"
)

type Options struct {
	Config        *config.Config
	StaticDir     string
	UseDiskStatic bool
	Logger        *log.Logger

	// Events overrides the default in-memory usage event store, mainly for
	// tests.
	Events metrics.Repository
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = "static"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Events == nil {
		opts.Events = metrics.NewMemoryRepository()
	}

	sessionRepo, err := session.NewFileRepo(opts.Config.DataDir)
	if err != nil {
		return nil, err
	}
	sessions := session.NewStore(sessionRepo, opts.Logger)

	api, err := gateway.NewClient(gateway.Options{
		BaseURL:  opts.Config.Backend.BaseURL,
		Timeout:  opts.Config.Backend.RequestTimeout,
		Sessions: sessions,
		Logger:   opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	browserTTL := opts.Config.Cookie.TTL
	if browserTTL <= 0 {
		browserTTL = 24 * time.Hour
	}
	h := &handlers{
		sessions:   sessions,
		api:        api,
		events:     opts.Events,
		cookies:    NewCookieService(opts.Config.Cookie),
		logger:     opts.Logger,
		browserTTL: browserTTL,
		browsers:   make(map[string]*browserEntry),
	}

	mux := http.NewServeMux()

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if opts.UseDiskStatic {
		staticHandler = http.FileServer(http.Dir(opts.StaticDir))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "novella",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if _, err := os.Stat(opts.Config.DataDir); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "session storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "novella",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/api/auth/login", h.handleLogin)
	mux.HandleFunc("/api/auth/signup", h.handleSignup)
	mux.HandleFunc("/api/auth/session", h.handleSession)
	mux.HandleFunc("/api/auth/logout", h.handleLogout)
	mux.HandleFunc("/api/auth/me", h.requireAuth(h.handleMe))
	mux.HandleFunc("/api/auth/update-profile", h.requireAuth(h.handleUpdateProfile))
	mux.HandleFunc("/api/auth/change-password", h.requireAuth(h.handleChangePassword))

	mux.HandleFunc("/api/rentals/properties", h.handlePropertiesRoot)
	mux.HandleFunc("/api/rentals/properties/", h.handlePropertySub)
	mux.HandleFunc("/api/rentals/my-properties", h.requireAuth(h.handleMyProperties))
	mux.HandleFunc("/api/rentals/bookings", h.requireAuth(h.handleCreateBooking))
	mux.HandleFunc("/api/rentals/bookings/", h.requireAuth(h.handleBookingSub))
	mux.HandleFunc("/api/rentals/my-bookings", h.requireAuth(h.handleMyBookings))
	mux.HandleFunc("/api/rentals/property-bookings", h.requireAuth(h.handlePropertyBookings))

	mux.HandleFunc("/api/dashboard", h.requireAuth(h.handleDashboard))
	mux.HandleFunc("/api/stats", h.requireAuth(h.handleStats))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		h.cookies.EnsureBrowserID(w, r)
		templ.Handler(page.HomePage()).ServeHTTP(w, r)
	})
	mux.Handle("/about", templ.Handler(page.AboutPage()))
	mux.Handle("/contact", templ.Handler(page.ContactPage()))

	mux.HandleFunc("/rentals", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		sid := h.cookies.EnsureBrowserID(w, r)
		b := h.browserFor(sid)
		h.applyBrowseQuery(r, b)
		templ.Handler(page.RentalsPage(b.Snapshot())).ServeHTTP(w, r)
	})

	mux.HandleFunc("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		sid := h.cookies.BrowserID(r)
		if sid == "" || !h.sessions.IsAuthenticated(sid) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		user := h.sessions.StoredUser(sid)
		tab := r.URL.Query().Get("tab")
		switch dashboard.ResolveDashboard(h.sessions.StoredRole(sid)) {
		case dashboard.VariantOwner:
			view := dashboard.BuildOwnerView(r.Context(), api, sid, user, tab, h.ownerStats(), opts.Logger)
			templ.Handler(page.OwnerDashboardPage(view)).ServeHTTP(w, r)
		default:
			view := dashboard.BuildRenterView(r.Context(), api, sid, user, tab, opts.Logger)
			templ.Handler(page.RenterDashboardPage(view)).ServeHTTP(w, r)
		}
	})

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithPageViews(opts.Events),
		httpmw.WithRecover(opts.Logger),
	), nil
}

func UseDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NOVELLA_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
