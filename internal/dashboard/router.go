// Package dashboard builds the renter and owner dashboard views: role
// dispatch, tab state, status styling, and the collections each tab shows.
package dashboard

import "github.com/yussufhh/Novella/internal/session"

// Variant is which dashboard a user sees. There is no third option.
type Variant string

const (
	VariantRenter Variant = "renter"
	VariantOwner  Variant = "owner"
)

// ResolveDashboard maps the persisted role to a dashboard variant. Unknown or
// absent roles degrade to the renter variant rather than erroring.
func ResolveDashboard(role session.Role) Variant {
	if role == session.RoleOwner {
		return VariantOwner
	}
	return VariantRenter
}
