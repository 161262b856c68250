package dashboard

// Tab identifies a sidebar section. Each variant has its own set; parsing an
// unknown tab lands on the overview rather than a blank page.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabBookings    Tab = "bookings"
	TabFavorites   Tab = "favorites"
	TabPayments    Tab = "payments"
	TabProfile     Tab = "profile"
	TabSettings    Tab = "settings"
	TabProperties  Tab = "properties"
	TabAddProperty Tab = "add-property"
	TabRevenue     Tab = "revenue"
	TabReviews     Tab = "reviews"
)

// TabItem pairs a tab with its sidebar label.
type TabItem struct {
	ID   Tab
	Name string
}

func renterTabs() []TabItem {
	return []TabItem{
		{TabOverview, "Overview"},
		{TabBookings, "My Bookings"},
		{TabFavorites, "Favorites"},
		{TabPayments, "Payments"},
		{TabProfile, "Profile"},
		{TabSettings, "Settings"},
	}
}

func ownerTabs() []TabItem {
	return []TabItem{
		{TabOverview, "Overview"},
		{TabProperties, "My Properties"},
		{TabAddProperty, "Add Property"},
		{TabBookings, "Bookings"},
		{TabRevenue, "Revenue"},
		{TabReviews, "Reviews"},
		{TabProfile, "Profile"},
		{TabSettings, "Settings"},
	}
}

// Tabs lists the sidebar items for a variant.
func Tabs(variant Variant) []TabItem {
	if variant == VariantOwner {
		return ownerTabs()
	}
	return renterTabs()
}

// ParseTab resolves a requested tab against the variant's set, falling back
// to the overview for anything it does not recognize.
func ParseTab(variant Variant, raw string) Tab {
	for _, item := range Tabs(variant) {
		if string(item.ID) == raw {
			return item.ID
		}
	}
	return TabOverview
}
