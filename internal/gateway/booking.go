package gateway

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) CreateBooking(ctx context.Context, sid string, input BookingInput) (*BookingResponse, error) {
	var out BookingResponse
	if err := c.call(ctx, sid, http.MethodPost, "/rentals/bookings", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyBookings(ctx context.Context, sid string) (*BookingsResponse, error) {
	var out BookingsResponse
	if err := c.call(ctx, sid, http.MethodGet, "/rentals/my-bookings", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PropertyBookings(ctx context.Context, sid string) (*BookingsResponse, error) {
	var out BookingsResponse
	if err := c.call(ctx, sid, http.MethodGet, "/rentals/property-bookings", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBookingStatus requests a status transition. Which transitions are
// legal is the backend's call; nothing is validated here.
func (c *Client) UpdateBookingStatus(ctx context.Context, sid string, bookingID int, status string) (*BookingResponse, error) {
	var out BookingResponse
	path := fmt.Sprintf("/rentals/bookings/%d/status", bookingID)
	body := map[string]string{"status": status}
	if err := c.call(ctx, sid, http.MethodPut, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
