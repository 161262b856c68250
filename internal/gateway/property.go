package gateway

import (
	"context"
	"net/http"
)

// Properties lists available properties. The filter is serialized sparsely;
// the zero filter sends no query string at all. Public endpoint, no auth.
func (c *Client) Properties(ctx context.Context, filter PropertyFilter) (*PropertiesResponse, error) {
	var out PropertiesResponse
	if err := c.call(ctx, "", http.MethodGet, "/rentals/properties", filter.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Property(ctx context.Context, id int) (*PropertyResponse, error) {
	var out PropertyResponse
	if err := c.call(ctx, "", http.MethodGet, propertyPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Owner-scoped CRUD. The backend enforces ownership; the client just carries
// the token and trusts the rejection.

func (c *Client) CreateProperty(ctx context.Context, sid string, input PropertyInput) (*PropertyResponse, error) {
	var out PropertyResponse
	if err := c.call(ctx, sid, http.MethodPost, "/rentals/properties", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProperty(ctx context.Context, sid string, id int, input PropertyInput) (*PropertyResponse, error) {
	var out PropertyResponse
	if err := c.call(ctx, sid, http.MethodPut, propertyPath(id), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProperty(ctx context.Context, sid string, id int) error {
	return c.call(ctx, sid, http.MethodDelete, propertyPath(id), nil, nil, nil)
}

func (c *Client) MyProperties(ctx context.Context, sid string) (*PropertiesResponse, error) {
	var out PropertiesResponse
	if err := c.call(ctx, sid, http.MethodGet, "/rentals/my-properties", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
