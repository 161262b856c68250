package session

import (
	"strings"
	"time"
)

// Role is the dashboard-facing user role. Anything the backend sends that is
// not a known role degrades to RoleRenter at the parse boundary.
type Role string

const (
	RoleRenter Role = "renter"
	RoleOwner  Role = "owner"
)

func ParseRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(RoleOwner):
		return RoleOwner
	default:
		return RoleRenter
	}
}

// UserRecord is the client-side cache of the backend user object. The backend
// owns it; field names mirror its JSON wire shape.
type UserRecord struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	UserType  string `json:"user_type"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (u UserRecord) Role() Role {
	return ParseRole(u.UserType)
}

// Record is one browser session's persisted state: the backend access token,
// the serialized user, and the derived role. UserJSON stays raw so a corrupt
// value reads as "no user" instead of failing the whole record.
type Record struct {
	ID        string    `json:"id"`
	Token     string    `json:"token,omitempty"`
	UserJSON  string    `json:"userJson,omitempty"`
	Role      Role      `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
