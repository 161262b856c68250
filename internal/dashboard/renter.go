package dashboard

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/yussufhh/Novella/internal/gateway"
	"github.com/yussufhh/Novella/internal/session"
)

// RenterAPI is the slice of the gateway the renter dashboard reads from.
type RenterAPI interface {
	MyBookings(ctx context.Context, sid string) (*gateway.BookingsResponse, error)
}

// StatCard is one of the headline numbers at the top of a dashboard.
type StatCard struct {
	Title string
	Value string
	Color string
}

// RenterView is everything the renter dashboard page renders.
type RenterView struct {
	Variant     Variant
	ActiveTab   Tab
	Tabs        []TabItem
	Name        string
	Email       string
	MemberSince string
	Stats       []StatCard
	Bookings    []BookingCard
	Favorites   []FavoriteCard
	Payments    []PaymentRow
	Live        bool
}

// BuildRenterView assembles the renter dashboard. Bookings come from the
// backend when it answers; otherwise the sample set keeps the page usable.
// Favorites and payments have no backend endpoint yet and are always samples.
func BuildRenterView(ctx context.Context, api RenterAPI, sid string, user *session.UserRecord, tab string, logger *log.Logger) RenterView {
	view := RenterView{
		Variant:   VariantRenter,
		ActiveTab: ParseTab(VariantRenter, tab),
		Tabs:      Tabs(VariantRenter),
		Favorites: sampleFavorites(),
		Payments:  samplePayments(),
	}
	if user != nil {
		view.Name = displayName(user)
		view.Email = user.Email
		view.MemberSince = memberSince(user.CreatedAt)
	}

	resp, err := api.MyBookings(ctx, sid)
	switch {
	case err != nil:
		if logger != nil {
			logger.Printf("dashboard: my-bookings unavailable, showing samples: %v", err)
		}
		view.Bookings = sampleRenterBookings()
	case len(resp.Bookings) == 0:
		view.Bookings = sampleRenterBookings()
	default:
		view.Bookings = renterBookingCards(resp.Bookings)
		view.Live = true
	}

	view.Stats = renterStats(view.Bookings, len(view.Favorites))
	return view
}

func renterBookingCards(bookings []gateway.Booking) []BookingCard {
	cards := make([]BookingCard, 0, len(bookings))
	for _, b := range bookings {
		card := BookingCard{
			ID:       b.ID,
			CheckIn:  b.StartDate,
			CheckOut: b.EndDate,
			Price:    formatMoney(b.TotalPrice),
			Status:   b.Status,
		}
		if b.Property != nil {
			card.Property = b.Property.Title
			card.Location = propertyLocation(b.Property)
			if len(b.Property.Images) > 0 {
				card.Image = b.Property.Images[0]
			}
		}
		cards = append(cards, card)
	}
	return cards
}

func renterStats(bookings []BookingCard, favorites int) []StatCard {
	active := 0
	var spent float64
	for _, b := range bookings {
		switch strings.ToLower(b.Status) {
		case "pending", "approved", "confirmed":
			active++
		}
		spent += parseMoney(b.Price)
	}
	return []StatCard{
		{Title: "Total Bookings", Value: fmt.Sprintf("%d", len(bookings)), Color: "blue"},
		{Title: "Active Bookings", Value: fmt.Sprintf("%d", active), Color: "green"},
		{Title: "Favorites", Value: fmt.Sprintf("%d", favorites), Color: "red"},
		{Title: "Total Spent", Value: formatMoney(spent), Color: "purple"},
	}
}

func displayName(user *session.UserRecord) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		return user.Email
	}
	return name
}

// memberSince turns the backend's created_at timestamp into "January 2024".
// Unparseable values come back as given rather than erroring the page.
func memberSince(createdAt string) string {
	if createdAt == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, createdAt); err == nil {
			return t.Format("January 2006")
		}
	}
	return createdAt
}

func propertyLocation(p *gateway.Property) string {
	if p.State != "" {
		return p.City + ", " + p.State
	}
	return p.City
}

func formatMoney(amount float64) string {
	// Round to whole cents first; truncating the float drops a cent on
	// values like 0.29 whose binary form sits just below the decimal one.
	cents := int64(math.Round(amount * 100))
	if cents%100 == 0 {
		return "$" + comma(cents/100)
	}
	return fmt.Sprintf("$%s.%02d", comma(cents/100), cents%100)
}

// comma renders 28400 as "28,400".
func comma(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}

// parseMoney is the inverse of formatMoney, tolerant of sample strings.
func parseMoney(s string) float64 {
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	var v float64
	if _, err := fmt.Sscanf(s, "%f", &v); err != nil {
		return 0
	}
	return v
}
