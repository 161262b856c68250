package gateway

import "github.com/yussufhh/Novella/internal/session"

// Wire types mirror the backend's JSON. The backend owns these shapes; the
// client never writes to them outside of request bodies.

type Property struct {
	ID            int            `json:"id"`
	OwnerID       int            `json:"owner_id,omitempty"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Address       string         `json:"address,omitempty"`
	City          string         `json:"city"`
	State         string         `json:"state,omitempty"`
	ZipCode       string         `json:"zip_code,omitempty"`
	PropertyType  string         `json:"property_type"`
	Bedrooms      int            `json:"bedrooms"`
	Bathrooms     float64        `json:"bathrooms"`
	SquareFeet    *int           `json:"square_feet,omitempty"`
	PricePerMonth float64        `json:"price_per_month"`
	IsAvailable   bool           `json:"is_available"`
	Amenities     []string       `json:"amenities,omitempty"`
	Images        []string       `json:"images,omitempty"`
	CreatedAt     string         `json:"created_at,omitempty"`
	Owner         *PropertyOwner `json:"owner,omitempty"`
}

// PropertyOwner is attached only on single-property reads.
type PropertyOwner struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type Booking struct {
	ID         int                 `json:"id"`
	PropertyID int                 `json:"property_id"`
	RenterID   int                 `json:"renter_id,omitempty"`
	StartDate  string              `json:"start_date"`
	EndDate    string              `json:"end_date"`
	TotalPrice float64             `json:"total_price"`
	Status     string              `json:"status"`
	Message    string              `json:"message,omitempty"`
	CreatedAt  string              `json:"created_at,omitempty"`
	Property   *Property           `json:"property,omitempty"`
	Renter     *session.UserRecord `json:"renter,omitempty"`
}

// PropertyFilter is serialized sparsely: only set fields become query
// parameters, so the zero filter produces a bare URL with no query string.
type PropertyFilter struct {
	City         string
	PropertyType string
	MinPrice     float64
	MaxPrice     float64
	Bedrooms     int
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	UserType  string `json:"user_type"`
}

type AuthResponse struct {
	AccessToken string             `json:"access_token"`
	User        session.UserRecord `json:"user"`
	Message     string             `json:"message,omitempty"`
}

type PropertiesResponse struct {
	Properties []Property `json:"properties"`
	Count      int        `json:"count"`
}

type PropertyResponse struct {
	Property Property `json:"property"`
	Message  string   `json:"message,omitempty"`
}

type BookingsResponse struct {
	Bookings []Booking `json:"bookings"`
	Count    int       `json:"count"`
}

type BookingResponse struct {
	Booking Booking `json:"booking"`
	Message string  `json:"message,omitempty"`
}

type ProfileUpdate struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type PropertyInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zip_code"`
	PropertyType  string   `json:"property_type"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     float64  `json:"bathrooms"`
	SquareFeet    *int     `json:"square_feet,omitempty"`
	PricePerMonth float64  `json:"price_per_month"`
	IsAvailable   *bool    `json:"is_available,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	Images        []string `json:"images,omitempty"`
}

type BookingInput struct {
	PropertyID int    `json:"property_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Message    string `json:"message,omitempty"`
}
