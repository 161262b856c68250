package dashboard

import "strings"

// Status badge styles. The tables are closed: anything not listed falls
// through to the variant's default so a new backend status never renders
// unstyled.

var renterStatusStyles = map[string]string{
	"confirmed": "bg-green-100 text-green-700 border-green-200",
	"pending":   "bg-yellow-100 text-yellow-700 border-yellow-200",
	"completed": "bg-blue-100 text-blue-700 border-blue-200",
	"cancelled": "bg-red-100 text-red-700 border-red-200",
	"paid":      "bg-green-100 text-green-700 border-green-200",
	"refunded":  "bg-orange-100 text-orange-700 border-orange-200",
}

var ownerStatusStyles = map[string]string{
	"active":    "bg-green-100 text-green-700 border-green-200",
	"pending":   "bg-yellow-100 text-yellow-700 border-yellow-200",
	"inactive":  "bg-gray-100 text-gray-700 border-gray-200",
	"confirmed": "bg-green-100 text-green-700 border-green-200",
	"approved":  "bg-green-100 text-green-700 border-green-200",
	"rejected":  "bg-red-100 text-red-700 border-red-200",
}

const (
	renterDefaultStyle = "bg-gray-100 text-gray-700 border-gray-200"
	ownerDefaultStyle  = "bg-blue-100 text-blue-700 border-blue-200"
)

// StatusStyle returns the badge classes for a booking, payment, or listing
// status on the given dashboard variant. Matching is case-insensitive.
func StatusStyle(variant Variant, status string) string {
	key := strings.ToLower(status)
	if variant == VariantOwner {
		if style, ok := ownerStatusStyles[key]; ok {
			return style
		}
		return ownerDefaultStyle
	}
	if style, ok := renterStatusStyles[key]; ok {
		return style
	}
	return renterDefaultStyle
}
