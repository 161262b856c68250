// Package authflow holds the login/signup form state machine: ordered local
// validation, submission through the gateway, and the success event handed to
// the caller. Validation failures never reach the network.
package authflow

import (
	"context"
	"errors"
	"regexp"
	"sync"

	"github.com/yussufhh/Novella/internal/gateway"
	"github.com/yussufhh/Novella/internal/session"
)

type Mode string

const (
	ModeLogin  Mode = "login"
	ModeSignup Mode = "signup"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
)

// Validation messages, surfaced verbatim and in this order.
const (
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Please enter a valid email address"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 8 characters"
	MsgConfirmRequired  = "Please confirm your password"
	MsgPasswordMismatch = "Passwords do not match"
)

var ErrSubmitInFlight = errors.New("a submission is already in flight")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is a local rule failure caught before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Success is the event emitted when a submission goes through. By then the
// gateway has already committed the session.
type Success struct {
	Email   string
	IsLogin bool
	Role    session.Role
}

// Authenticator is the slice of the gateway the form needs.
type Authenticator interface {
	Login(ctx context.Context, sid string, creds gateway.Credentials) (*gateway.AuthResponse, error)
	Signup(ctx context.Context, sid string, req gateway.SignupRequest) (*gateway.AuthResponse, error)
}

// Form is one modal's state. Every method takes the internal lock, so a form
// is safe to share between the goroutine driving input and the one submitting.
type Form struct {
	mu sync.Mutex

	api Authenticator
	sid string

	mode  Mode
	phase Phase

	email           string
	password        string
	confirmPassword string
	role            session.Role

	showPassword        bool
	showConfirmPassword bool

	errMsg string
}

func NewForm(api Authenticator, sid string) *Form {
	return &Form{
		api:   api,
		sid:   sid,
		mode:  ModeLogin,
		phase: PhaseIdle,
		role:  session.RoleRenter,
	}
}

func (f *Form) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

func (f *Form) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *Form) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

func (f *Form) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

func (f *Form) SetEmail(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = v
}

func (f *Form) SetPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.password = v
}

func (f *Form) SetConfirmPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmPassword = v
}

// SetRole picks the signup role. During login the selection is ignored; the
// server-returned user record decides.
func (f *Form) SetRole(r session.Role) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.role = r
}

func (f *Form) TogglePasswordVisibility() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showPassword = !f.showPassword
}

func (f *Form) ToggleConfirmPasswordVisibility() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showConfirmPassword = !f.showConfirmPassword
}

// Toggle switches between login and signup, resetting every field, the role,
// both visibility toggles, and the error. Full reset, never partial.
func (f *Form) Toggle() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == ModeLogin {
		f.mode = ModeSignup
	} else {
		f.mode = ModeLogin
	}
	f.resetLocked()
}

// Reset discards all input, as when the modal closes. An in-flight request is
// not cancelled; its session commit stands.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *Form) resetLocked() {
	f.email = ""
	f.password = ""
	f.confirmPassword = ""
	f.role = session.RoleRenter
	f.showPassword = false
	f.showConfirmPassword = false
	f.errMsg = ""
	f.phase = PhaseIdle
}

// Validate applies the rules in order and returns the first failure, or ""
// when the form is submittable.
func (f *Form) Validate() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *Form) validateLocked() string {
	if f.email == "" {
		return MsgEmailRequired
	}
	if !emailPattern.MatchString(f.email) {
		return MsgEmailInvalid
	}
	if f.password == "" {
		return MsgPasswordRequired
	}
	if len(f.password) < 8 {
		return MsgPasswordTooShort
	}
	if f.mode == ModeSignup {
		if f.confirmPassword == "" {
			return MsgConfirmRequired
		}
		if f.password != f.confirmPassword {
			return MsgPasswordMismatch
		}
	}
	return ""
}

// Submit validates and, if clean, drives the gateway call. A validation
// failure returns *ValidationError without touching the network. A backend
// rejection surfaces verbatim and the form returns to editable idle. On
// success the session is already committed and a Success event comes back.
func (f *Form) Submit(ctx context.Context) (*Success, error) {
	f.mu.Lock()
	if f.phase == PhaseSubmitting {
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	f.errMsg = ""
	if msg := f.validateLocked(); msg != "" {
		f.errMsg = msg
		f.mu.Unlock()
		return nil, &ValidationError{Message: msg}
	}
	f.phase = PhaseSubmitting
	mode := f.mode
	email, password, confirm := f.email, f.password, f.confirmPassword
	role := f.role
	f.mu.Unlock()

	var (
		resp *gateway.AuthResponse
		err  error
	)
	if mode == ModeLogin {
		resp, err = f.api.Login(ctx, f.sid, gateway.Credentials{Email: email, Password: password})
	} else {
		_ = confirm // equality already checked; confirm never leaves the form
		resp, err = f.api.Signup(ctx, f.sid, gateway.SignupRequest{
			Email:    email,
			Password: password,
			UserType: string(role),
		})
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.phase = PhaseIdle
	if err != nil {
		f.errMsg = err.Error()
		return nil, err
	}

	out := &Success{Email: email, IsLogin: mode == ModeLogin}
	if mode == ModeLogin {
		out.Role = session.ParseRole(resp.User.UserType)
	} else {
		out.Role = role
	}
	return out, nil
}
