package authflow

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yussufhh/Novella/internal/gateway"
	"github.com/yussufhh/Novella/internal/session"
)

type fakeAuthenticator struct {
	loginCalls  int
	signupCalls int
	loginResp   *gateway.AuthResponse
	signupResp  *gateway.AuthResponse
	err         error
}

func (f *fakeAuthenticator) Login(_ context.Context, _ string, _ gateway.Credentials) (*gateway.AuthResponse, error) {
	f.loginCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.loginResp, nil
}

func (f *fakeAuthenticator) Signup(_ context.Context, _ string, _ gateway.SignupRequest) (*gateway.AuthResponse, error) {
	f.signupCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.signupResp, nil
}

func TestForm_ValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		mode    Mode
		email   string
		pass    string
		confirm string
		want    string
	}{
		{"email required", ModeLogin, "", "", "", MsgEmailRequired},
		{"email format", ModeLogin, "bad", "whatever12", "", MsgEmailInvalid},
		{"password required", ModeLogin, "a@b.co", "", "", MsgPasswordRequired},
		{"password length", ModeLogin, "a@b.co", "short", "", MsgPasswordTooShort},
		{"confirm required", ModeSignup, "a@b.co", "longenough", "", MsgConfirmRequired},
		{"confirm mismatch", ModeSignup, "a@b.co", "longenough", "different1", MsgPasswordMismatch},
		{"login ok", ModeLogin, "a@b.co", "longenough", "", ""},
		{"signup ok", ModeSignup, "a@b.co", "longenough", "longenough", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewForm(&fakeAuthenticator{}, "sid")
			if tc.mode == ModeSignup {
				f.Toggle()
			}
			f.SetEmail(tc.email)
			f.SetPassword(tc.pass)
			f.SetConfirmPassword(tc.confirm)
			assert.Equal(t, tc.want, f.Validate())
		})
	}
}

func TestForm_ValidationFailureNeverHitsNetwork(t *testing.T) {
	api := &fakeAuthenticator{}
	f := NewForm(api, "sid")
	f.Toggle() // signup
	f.SetEmail("bad")
	f.SetPassword("short")

	_, err := f.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	// First failing rule wins: the email format message, not the password one.
	assert.Equal(t, MsgEmailInvalid, verr.Message)
	assert.Equal(t, MsgEmailInvalid, f.ErrorMessage())
	assert.Zero(t, api.loginCalls)
	assert.Zero(t, api.signupCalls)
}

func TestForm_ToggleFullyResets(t *testing.T) {
	f := NewForm(&fakeAuthenticator{}, "sid")
	f.SetEmail("kept@example.com")
	f.SetPassword("longenough")
	f.SetConfirmPassword("longenough")
	f.SetRole(session.RoleOwner)
	f.TogglePasswordVisibility()
	f.SetEmail("")
	_, err := f.Submit(context.Background())
	require.Error(t, err)
	require.NotEmpty(t, f.ErrorMessage())

	f.Toggle()

	assert.Equal(t, ModeSignup, f.Mode())
	assert.Empty(t, f.Email())
	assert.Empty(t, f.ErrorMessage())
	assert.Equal(t, PhaseIdle, f.Phase())
	// Every field reset: a clean submit now fails on the first rule again.
	assert.Equal(t, MsgEmailRequired, f.Validate())
}

func TestForm_SubmitLogin_RoleComesFromServer(t *testing.T) {
	api := &fakeAuthenticator{
		loginResp: &gateway.AuthResponse{
			AccessToken: "tok",
			User:        session.UserRecord{ID: 2, Email: "a@b.co", UserType: "owner"},
		},
	}
	f := NewForm(api, "sid")
	f.SetEmail("a@b.co")
	f.SetPassword("longenough")
	f.SetRole(session.RoleRenter) // ignored on login

	out, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, out.IsLogin)
	assert.Equal(t, "a@b.co", out.Email)
	assert.Equal(t, session.RoleOwner, out.Role)
	assert.Equal(t, 1, api.loginCalls)
	assert.Equal(t, PhaseIdle, f.Phase())
}

func TestForm_SubmitSignup_CarriesChosenRole(t *testing.T) {
	api := &fakeAuthenticator{
		signupResp: &gateway.AuthResponse{
			AccessToken: "tok",
			User:        session.UserRecord{ID: 5, Email: "n@b.co", UserType: "owner"},
		},
	}
	f := NewForm(api, "sid")
	f.Toggle()
	f.SetEmail("n@b.co")
	f.SetPassword("longenough")
	f.SetConfirmPassword("longenough")
	f.SetRole(session.RoleOwner)

	out, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.False(t, out.IsLogin)
	assert.Equal(t, session.RoleOwner, out.Role)
	assert.Equal(t, 1, api.signupCalls)
}

func TestForm_BackendRejectionSurfacesVerbatimAndReturnsToIdle(t *testing.T) {
	api := &fakeAuthenticator{err: &gateway.APIError{StatusCode: 401, Message: "Invalid email or password"}}
	f := NewForm(api, "sid")
	f.SetEmail("a@b.co")
	f.SetPassword("longenough")

	_, err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", f.ErrorMessage())
	assert.Equal(t, PhaseIdle, f.Phase())

	// Editable again: a second submit reaches the network once more.
	_, _ = f.Submit(context.Background())
	assert.Equal(t, 2, api.loginCalls)
}

func TestForm_SubmitInFlightIsRejected(t *testing.T) {
	f := NewForm(&fakeAuthenticator{}, "sid")
	f.mu.Lock()
	f.phase = PhaseSubmitting
	f.mu.Unlock()

	_, err := f.Submit(context.Background())
	assert.True(t, errors.Is(err, ErrSubmitInFlight))
}

func TestForm_ConcurrentAccessIsSerialized(t *testing.T) {
	// Every accessor takes the form's lock; hammering the form from several
	// goroutines must leave it in a coherent state (run with -race).
	f := NewForm(&fakeAuthenticator{
		loginResp: &gateway.AuthResponse{
			AccessToken: "tok",
			User:        session.UserRecord{ID: 7, Email: "a@b.co", UserType: "renter"},
		},
	}, "sid")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.SetEmail("a@b.co")
			f.SetPassword("longenough")
			f.TogglePasswordVisibility()
			_ = f.Mode()
			_ = f.Email()
			_ = f.ErrorMessage()
			_ = f.Validate()
		}()
	}
	wg.Wait()

	assert.Equal(t, "a@b.co", f.Email())
	assert.Equal(t, "", f.Validate())
	_, err := f.Submit(context.Background())
	require.NoError(t, err)
}
