package gateway

import (
	"context"
	"net/http"
)

// Signup registers a new account. On success the token and user are committed
// to the session store as one step; on failure the session is untouched and
// the backend's error propagates to the caller.
func (c *Client) Signup(ctx context.Context, sid string, req SignupRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.call(ctx, "", http.MethodPost, "/auth/signup", nil, req, &out); err != nil {
		return nil, err
	}
	if err := c.commitAuth(sid, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates existing credentials. Commit semantics match Signup.
func (c *Client) Login(ctx context.Context, sid string, creds Credentials) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.call(ctx, "", http.MethodPost, "/auth/login", nil, creds, &out); err != nil {
		return nil, err
	}
	if err := c.commitAuth(sid, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) commitAuth(sid string, resp *AuthResponse) error {
	if resp.AccessToken == "" {
		return nil
	}
	return c.sessions.SetSession(sid, resp.AccessToken, resp.User)
}

// Me fetches the current user from the backend (not the cached copy).
func (c *Client) Me(ctx context.Context, sid string) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.call(ctx, sid, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile updates profile fields and refreshes the cached user when the
// backend echoes one back.
func (c *Client) UpdateProfile(ctx context.Context, sid string, update ProfileUpdate) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.call(ctx, sid, http.MethodPut, "/auth/update-profile", nil, update, &out); err != nil {
		return nil, err
	}
	if out.User.ID != 0 {
		if token := c.sessions.Token(sid); token != "" {
			if err := c.sessions.SetSession(sid, token, out.User); err != nil {
				return nil, err
			}
		}
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, sid string, change PasswordChange) error {
	return c.call(ctx, sid, http.MethodPut, "/auth/change-password", nil, change, nil)
}
