// Package gateway is the typed client for the external rentals backend. All
// outbound calls flow through it: it attaches the bearer token when one
// exists, serializes filters sparsely, and normalizes every failure into an
// *APIError carrying the backend's message.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yussufhh/Novella/internal/session"
)

const fallbackErrorMessage = "Something went wrong"

// APIError is the single error signal callers get for any backend or network
// failure. Message is the body's "error" field when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// SessionCommitter is what Login/Signup need from the session store: reading
// the current token and committing a new token+user pair in one step.
type SessionCommitter interface {
	Token(sid string) string
	SetSession(sid, token string, user session.UserRecord) error
}

type Client struct {
	baseURL  string
	http     *http.Client
	sessions SessionCommitter
	logger   *log.Logger
}

type Options struct {
	// BaseURL is the backend origin, e.g. http://localhost:5000. The /api
	// prefix is appended here.
	BaseURL  string
	Timeout  time.Duration
	Sessions SessionCommitter
	Logger   *log.Logger
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, errors.New("gateway: base URL is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("gateway: session store is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:  strings.TrimSuffix(opts.BaseURL, "/") + "/api",
		http:     hc,
		sessions: opts.Sessions,
		logger:   opts.Logger,
	}, nil
}

// call issues one JSON request. sid == "" means unauthenticated; otherwise
// the session's token, when present, rides along as a bearer header. The
// response body is decoded into out (which may be nil) regardless of status;
// non-2xx statuses become an *APIError.
func (c *Client) call(ctx context.Context, sid, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(b)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if sid != "" {
		if token := c.sessions.Token(sid); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: fallbackErrorMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		msg := fallbackErrorMessage
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			msg = errBody.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: fallbackErrorMessage}
	}
	return nil
}

func (f PropertyFilter) query() url.Values {
	q := url.Values{}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.PropertyType != "" {
		q.Set("property_type", f.PropertyType)
	}
	if f.MinPrice > 0 {
		q.Set("min_price", formatFloat(f.MinPrice))
	}
	if f.MaxPrice > 0 {
		q.Set("max_price", formatFloat(f.MaxPrice))
	}
	if f.Bedrooms > 0 {
		q.Set("bedrooms", strconv.Itoa(f.Bedrooms))
	}
	return q
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func propertyPath(id int) string {
	return fmt.Sprintf("/rentals/properties/%d", id)
}
