package dashboard

// Sample collections shown while the backend has no data for the account yet
// (or is unreachable). They keep every tab populated on a fresh install.

// BookingCard is a renter-facing booking row.
type BookingCard struct {
	ID       int
	Property string
	Location string
	CheckIn  string
	CheckOut string
	Price    string
	Status   string
	Image    string
}

// FavoriteCard is a saved property on the renter's favorites tab.
type FavoriteCard struct {
	ID       int
	Title    string
	Location string
	Price    string
	Rating   string
	Beds     int
	Baths    int
	Area     string
	Image    string
}

// PaymentRow is one entry in the renter's payment history.
type PaymentRow struct {
	ID       int
	Property string
	Date     string
	Amount   string
	Status   string
	Method   string
}

// ListingCard is an owner-facing property row with its traffic counters.
type ListingCard struct {
	ID       int
	Title    string
	Location string
	Price    string
	Status   string
	Beds     int
	Baths    int
	Area     string
	Views    int
	Bookings int
	Rating   string
	Image    string
}

// OwnerBookingRow is a booking against one of the owner's properties.
type OwnerBookingRow struct {
	ID       int
	Property string
	Renter   string
	CheckIn  string
	CheckOut string
	Price    string
	Status   string
}

// MonthRevenue is one bar of the revenue chart.
type MonthRevenue struct {
	Month  string
	Amount int
}

// Review is a renter review on one of the owner's properties.
type Review struct {
	ID       int
	Property string
	Renter   string
	Rating   int
	Comment  string
	Date     string
}

func sampleRenterBookings() []BookingCard {
	return []BookingCard{
		{1, "Azure Horizon Villa", "Malindi, Kenya", "2025-01-15", "2025-01-22", "$2,500", "Confirmed", "/static/img/villa.jpg"},
		{2, "Downtown Studio Loft", "Nairobi, Kenya", "2025-02-10", "2025-02-17", "$1,200", "Pending", "/static/img/loft.jpg"},
		{3, "Seaside Family Home", "Mombasa, Kenya", "2024-12-01", "2024-12-08", "$3,200", "Completed", "/static/img/family.jpg"},
	}
}

func sampleFavorites() []FavoriteCard {
	return []FavoriteCard{
		{1, "Luxury Penthouse", "Nairobi, Kenya", "$5,000", "5.0", 3, 3, "2200 sq ft", "/static/img/penthouse.jpg"},
		{2, "Modern City Apartment", "Kisumu, Kenya", "$1,800", "4.6", 2, 2, "1200 sq ft", "/static/img/apartment.jpg"},
	}
}

func samplePayments() []PaymentRow {
	return []PaymentRow{
		{1, "Azure Horizon Villa", "2024-12-20", "$2,500", "Paid", "Credit Card"},
		{2, "Seaside Family Home", "2024-11-25", "$3,200", "Paid", "PayPal"},
		{3, "Downtown Studio Loft", "2024-11-10", "$1,200", "Refunded", "Credit Card"},
	}
}

func sampleListings() []ListingCard {
	return []ListingCard{
		{1, "Azure Horizon Villa", "Malindi, Kenya", "$2,500", "Active", 4, 3, "2800 sq ft", 324, 12, "4.9", "/static/img/villa.jpg"},
		{2, "Downtown Studio Loft", "Nairobi, Kenya", "$1,200", "Active", 1, 1, "650 sq ft", 189, 8, "4.7", "/static/img/loft.jpg"},
		{3, "Luxury Penthouse", "Nairobi, Kenya", "$5,000", "Pending", 3, 3, "2200 sq ft", 567, 15, "5.0", "/static/img/penthouse.jpg"},
	}
}

func sampleOwnerBookings() []OwnerBookingRow {
	return []OwnerBookingRow{
		{1, "Azure Horizon Villa", "John Doe", "2025-01-15", "2025-01-22", "$2,500", "Confirmed"},
		{2, "Downtown Studio Loft", "Jane Smith", "2025-02-10", "2025-02-17", "$1,200", "Pending"},
		{3, "Luxury Penthouse", "Mike Brown", "2024-12-28", "2025-01-05", "$5,000", "Confirmed"},
	}
}

func sampleRevenue() []MonthRevenue {
	return []MonthRevenue{
		{"Jan", 12400}, {"Feb", 15200}, {"Mar", 18900}, {"Apr", 14300},
		{"May", 19800}, {"Jun", 22100}, {"Jul", 20500}, {"Aug", 23400},
		{"Sep", 21200}, {"Oct", 24800}, {"Nov", 26300}, {"Dec", 28500},
	}
}

func sampleReviews() []Review {
	return []Review{
		{1, "Azure Horizon Villa", "John Doe", 5, "Amazing property! The villa exceeded all our expectations. Beautiful views and excellent amenities.", "2024-12-20"},
		{2, "Downtown Studio Loft", "Jane Smith", 4, "Great location and clean apartment. Perfect for a city stay.", "2024-12-18"},
		{3, "Luxury Penthouse", "Mike Brown", 5, "Absolutely stunning! Worth every penny. Will definitely book again.", "2024-12-15"},
	}
}
