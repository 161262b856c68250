package webapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/yussufhh/Novella/internal/authflow"
	"github.com/yussufhh/Novella/internal/dashboard"
	"github.com/yussufhh/Novella/internal/gateway"
	"github.com/yussufhh/Novella/internal/metrics"
	"github.com/yussufhh/Novella/internal/rentals"
	"github.com/yussufhh/Novella/internal/session"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

// writeGatewayErr maps a backend rejection onto our response, keeping the
// backend's status and message. Anything else is a 502 with the fallback text.
func writeGatewayErr(w http.ResponseWriter, err error) {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.StatusCode
		if code == 0 {
			code = http.StatusBadGateway
		}
		writeErr(w, code, apiErr.Message)
		return
	}
	writeErr(w, http.StatusBadGateway, err.Error())
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// handlers carries the app's services into the HTTP layer.
type handlers struct {
	sessions *session.Store
	api      *gateway.Client
	events   metrics.Repository
	cookies  *CookieService
	logger   *log.Logger

	// One browse view per browser session; the generation guard inside each
	// Browser keeps slow responses from clobbering newer ones. Entries idle
	// longer than browserTTL are swept so cookie-less crawlers minting fresh
	// session ids cannot grow the map forever.
	browserTTL time.Duration
	browsersMu sync.Mutex
	browsers   map[string]*browserEntry
}

type browserEntry struct {
	view     *rentals.Browser
	lastSeen time.Time
}

func (h *handlers) browserFor(sid string) *rentals.Browser {
	now := time.Now()
	h.browsersMu.Lock()
	defer h.browsersMu.Unlock()
	for id, e := range h.browsers {
		if now.Sub(e.lastSeen) > h.browserTTL {
			delete(h.browsers, id)
		}
	}
	e, ok := h.browsers[sid]
	if !ok {
		e = &browserEntry{view: rentals.NewBrowser(h.api, h.logger)}
		h.browsers[sid] = e
	}
	e.lastSeen = now
	return e.view
}

// dropBrowser releases a session's browse state, as on logout.
func (h *handlers) dropBrowser(sid string) {
	h.browsersMu.Lock()
	delete(h.browsers, sid)
	h.browsersMu.Unlock()
}

// requireAuth guards API routes that need a logged-in backend session.
func (h *handlers) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid := h.cookies.BrowserID(r)
		if sid == "" || !h.sessions.IsAuthenticated(sid) {
			writeErr(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r)
	}
}

// POST /api/auth/login and /api/auth/signup share one shape; the form state
// machine does the ordered validation and the gateway call.
func (h *handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	h.handleAuthSubmit(w, r, authflow.ModeLogin)
}

func (h *handlers) handleSignup(w http.ResponseWriter, r *http.Request) {
	h.handleAuthSubmit(w, r, authflow.ModeSignup)
}

func (h *handlers) handleAuthSubmit(w http.ResponseWriter, r *http.Request, mode authflow.Mode) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var in struct {
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
		UserType        string `json:"user_type"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	sid := h.cookies.EnsureBrowserID(w, r)
	form := authflow.NewForm(h.api, sid)
	if mode == authflow.ModeSignup {
		form.Toggle()
	}
	form.SetEmail(strings.TrimSpace(in.Email))
	form.SetPassword(in.Password)
	form.SetConfirmPassword(in.ConfirmPassword)
	if in.UserType != "" {
		form.SetRole(session.ParseRole(in.UserType))
	}

	success, err := form.Submit(r.Context())
	if err != nil {
		var vErr *authflow.ValidationError
		if errors.As(err, &vErr) {
			writeErr(w, http.StatusBadRequest, vErr.Message)
			return
		}
		writeGatewayErr(w, err)
		return
	}

	event := metrics.EventLogin
	if mode == authflow.ModeSignup {
		event = metrics.EventSignup
	}
	_ = h.events.RecordEvent(event, metrics.EventMetadata{"email": success.Email})

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"role": success.Role,
		"user": h.sessions.StoredUser(sid),
	})
}

// GET /api/auth/session
func (h *handlers) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	sid := h.cookies.BrowserID(r)
	if sid == "" || !h.sessions.IsAuthenticated(sid) {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          h.sessions.StoredUser(sid),
		"role":          h.sessions.StoredRole(sid),
	})
}

// POST /api/auth/logout
func (h *handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	sid := h.cookies.BrowserID(r)
	if sid != "" {
		if err := h.sessions.ClearSession(sid); err != nil {
			h.logger.Printf("[webapp] clearing session %s: %v", sid, err)
		}
		h.dropBrowser(sid)
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// GET /api/auth/me
func (h *handlers) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	resp, err := h.api.Me(r.Context(), h.cookies.BrowserID(r))
	if err != nil {
		writeGatewayErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// PUT /api/auth/update-profile
func (h *handlers) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var in gateway.ProfileUpdate
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	resp, err := h.api.UpdateProfile(r.Context(), h.cookies.BrowserID(r), in)
	if err != nil {
		writeGatewayErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// PUT /api/auth/change-password
func (h *handlers) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var in gateway.PasswordChange
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.api.ChangePassword(r.Context(), h.cookies.BrowserID(r), in); err != nil {
		writeGatewayErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// GET /api/rentals/properties lists via the per-session browse view: category
// and city changes each trigger exactly one backend fetch.
func (h *handlers) handleProperties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	sid := h.cookies.EnsureBrowserID(w, r)
	b := h.browserFor(sid)
	h.applyBrowseQuery(r, b)
	writeJSON(w, http.StatusOK, b.Snapshot())
}

func (h *handlers) applyBrowseQuery(r *http.Request, b *rentals.Browser) {
	q := r.URL.Query()
	view := b.Snapshot()
	changed := false

	if q.Has("category") {
		if cat := rentals.ParseCategory(q.Get("category")); cat != view.Category {
			b.SetCategory(r.Context(), cat)
			changed = true
		}
	}
	if q.Has("city") {
		if city := strings.TrimSpace(q.Get("city")); city != view.City {
			b.SetCity(r.Context(), city)
			changed = true
			if city != "" {
				_ = h.events.RecordEvent(metrics.EventSearch, metrics.EventMetadata{"city": city})
			}
		}
	}
	if q.Has("retry") {
		b.Retry(r.Context())
		return
	}
	if !changed && view.State != rentals.StateGrid && view.State != rentals.StateError {
		b.Refresh(r.Context())
	}
}

// GET /api/rentals/properties/{id}
func (h *handlers) handleProperty(w http.ResponseWriter, r *http.Request, id int) {
	resp, err := h.api.Property(r.Context(), id)
	if err != nil {
		if gateway.IsNotFound(err) {
			writeErr(w, http.StatusNotFound, "Property not found")
			return
		}
		writeGatewayErr(w, err)
		return
	}
	_ = h.events.RecordEvent(metrics.EventPropertyView, metrics.EventMetadata{"property_id": id})
	writeJSON(w, http.StatusOK, resp)
}

// /api/rentals/properties/{id} dispatch plus owner CRUD on the same path.
func (h *handlers) handlePropertySub(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/rentals/properties/")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		writeErr(w, http.StatusNotFound, "Property not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleProperty(w, r, id)
	case http.MethodPut:
		h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
			var in gateway.PropertyInput
			if err := decodeJSON(r, &in); err != nil {
				writeErr(w, http.StatusBadRequest, "invalid json")
				return
			}
			resp, err := h.api.UpdateProperty(r.Context(), h.cookies.BrowserID(r), id, in)
			if err != nil {
				writeGatewayErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, resp)
		})(w, r)
	case http.MethodDelete:
		h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
			if err := h.api.DeleteProperty(r.Context(), h.cookies.BrowserID(r), id); err != nil {
				writeGatewayErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		})(w, r)
	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// POST /api/rentals/properties (create) shares the collection path with GET.
func (h *handlers) handlePropertiesRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleProperties(w, r)
	case http.MethodPost:
		h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
			var in gateway.PropertyInput
			if err := decodeJSON(r, &in); err != nil {
				writeErr(w, http.StatusBadRequest, "invalid json")
				return
			}
			resp, err := h.api.CreateProperty(r.Context(), h.cookies.BrowserID(r), in)
			if err != nil {
				writeGatewayErr(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, resp)
		})(w, r)
	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// GET /api/rentals/my-properties
func (h *handlers) handleMyProperties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	resp, err := h.api.MyProperties(r.Context(), h.cookies.BrowserID(r))
	if err != nil {
		writeGatewayErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// POST /api/rentals/bookings
func (h *handlers) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var in gateway.BookingInput
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	resp, err := h.api.CreateBooking(r.Context(), h.cookies.BrowserID(r), in)
	if err != nil {
		writeGatewayErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// GET /api/rentals/my-bookings
func (h *handlers) handleMyBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	resp, err := h.api.MyBookings(r.Context(), h.cookies.BrowserID(r))
	if err != nil {
		writeGatewayErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /api/rentals/property-bookings
func (h *handlers) handlePropertyBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	resp, err := h.api.PropertyBookings(r.Context(), h.cookies.BrowserID(r))
	if err != nil {
		writeGatewayErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// PUT /api/rentals/bookings/{id}/status
func (h *handlers) handleBookingSub(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/rentals/bookings/")
	idStr, action, _ := strings.Cut(rest, "/")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 || action != "status" {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodPut {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var in struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	resp, err := h.api.UpdateBookingStatus(r.Context(), h.cookies.BrowserID(r), id, in.Status)
	if err != nil {
		writeGatewayErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /api/dashboard assembles the variant for the session's role.
func (h *handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	sid := h.cookies.BrowserID(r)
	user := h.sessions.StoredUser(sid)
	tab := r.URL.Query().Get("tab")

	switch dashboard.ResolveDashboard(h.sessions.StoredRole(sid)) {
	case dashboard.VariantOwner:
		stats := h.ownerStats()
		view := dashboard.BuildOwnerView(r.Context(), h.api, sid, user, tab, stats, h.logger)
		writeJSON(w, http.StatusOK, view)
	default:
		view := dashboard.BuildRenterView(r.Context(), h.api, sid, user, tab, h.logger)
		writeJSON(w, http.StatusOK, view)
	}
}

// GET /api/stats exposes the local usage counters (owner-facing).
func (h *handlers) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	stats := h.ownerStats()
	if stats == nil {
		writeErr(w, http.StatusInternalServerError, "stats unavailable")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *handlers) ownerStats() *metrics.Stats {
	since := time.Now().AddDate(0, 0, -30)
	events, err := h.events.GetEvents(since, nil)
	if err != nil {
		h.logger.Printf("[webapp] reading usage events: %v", err)
		return nil
	}
	stats, err := metrics.CalculateStats(events, since)
	if err != nil {
		h.logger.Printf("[webapp] aggregating usage events: %v", err)
		return nil
	}
	return &stats
}
