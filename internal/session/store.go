package session

import (
	"encoding/json"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Store is the injectable session context for the app. It holds the backend
// access token plus the cached user identity and role for each browser
// session, and is passed by reference to anything that needs auth state.
//
// Invariant: a record has a token iff it has a user; both are written in a
// single Put and removed in a single Delete.
type Store struct {
	repo   *FileRepo
	logger *log.Logger
	now    func() time.Time
}

func NewStore(repo *FileRepo, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{repo: repo, logger: logger, now: time.Now}
}

// NewBrowserID mints the opaque ID carried by the session cookie.
func NewBrowserID() string {
	return uuid.NewString()
}

// SetSession commits the token and user atomically and derives the role from
// the user's type. Called only after a successful login or signup response.
func (s *Store) SetSession(sid, token string, user UserRecord) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	now := s.now()
	rec, ok := s.repo.Get(sid)
	if !ok {
		rec = Record{ID: sid, CreatedAt: now}
	}
	rec.Token = token
	rec.UserJSON = string(raw)
	rec.Role = user.Role()
	rec.UpdatedAt = now
	return s.repo.Put(rec)
}

// ClearSession removes token, user, and role together. Idempotent.
func (s *Store) ClearSession(sid string) error {
	return s.repo.Delete(sid)
}

// IsAuthenticated is true iff the session holds a live token.
func (s *Store) IsAuthenticated(sid string) bool {
	return s.Token(sid) != ""
}

// Token returns the backend access token, or "" when the session has none or
// the token's exp claim has passed. The signature is never verified here; the
// backend is authoritative and will reject anything forged.
func (s *Store) Token(sid string) string {
	rec, ok := s.repo.Get(sid)
	if !ok || rec.Token == "" {
		return ""
	}
	if tokenExpired(rec.Token, s.now()) {
		return ""
	}
	return rec.Token
}

// StoredUser returns the cached user record. Malformed persisted data is
// treated as absence, never as a failure.
func (s *Store) StoredUser(sid string) *UserRecord {
	rec, ok := s.repo.Get(sid)
	if !ok || rec.UserJSON == "" {
		return nil
	}
	var u UserRecord
	if err := json.Unmarshal([]byte(rec.UserJSON), &u); err != nil {
		s.logger.Printf("[session] discarding malformed user for %s: %v", sid, err)
		return nil
	}
	return &u
}

// StoredRole reads the persisted role, degrading to renter when absent.
func (s *Store) StoredRole(sid string) Role {
	rec, ok := s.repo.Get(sid)
	if !ok {
		return RoleRenter
	}
	return ParseRole(string(rec.Role))
}

func tokenExpired(token string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		// Opaque (non-JWT) tokens carry no expiry the client can read.
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
