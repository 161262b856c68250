package dashboard

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/yussufhh/Novella/internal/gateway"
	"github.com/yussufhh/Novella/internal/metrics"
	"github.com/yussufhh/Novella/internal/session"
)

// OwnerAPI is the slice of the gateway the owner dashboard reads from.
type OwnerAPI interface {
	MyProperties(ctx context.Context, sid string) (*gateway.PropertiesResponse, error)
	PropertyBookings(ctx context.Context, sid string) (*gateway.BookingsResponse, error)
}

// OwnerView is everything the owner dashboard page renders.
type OwnerView struct {
	Variant     Variant
	ActiveTab   Tab
	Tabs        []TabItem
	Name        string
	Email       string
	MemberSince string
	Stats       []StatCard
	Listings    []ListingCard
	Bookings    []OwnerBookingRow
	Revenue     []MonthRevenue
	Reviews     []Review
	Live        bool
}

// BuildOwnerView assembles the owner dashboard. Listings and bookings come
// from the backend when it answers, with per-listing view counts folded in
// from local usage stats. Revenue history and reviews have no backend
// endpoint yet and are always samples.
func BuildOwnerView(ctx context.Context, api OwnerAPI, sid string, user *session.UserRecord, tab string, stats *metrics.Stats, logger *log.Logger) OwnerView {
	view := OwnerView{
		Variant:   VariantOwner,
		ActiveTab: ParseTab(VariantOwner, tab),
		Tabs:      Tabs(VariantOwner),
		Revenue:   sampleRevenue(),
		Reviews:   sampleReviews(),
	}
	if user != nil {
		view.Name = displayName(user)
		view.Email = user.Email
		view.MemberSince = memberSince(user.CreatedAt)
	}

	props, propErr := api.MyProperties(ctx, sid)
	bookings, bookErr := api.PropertyBookings(ctx, sid)
	if propErr != nil || bookErr != nil {
		if logger != nil {
			logger.Printf("dashboard: owner data unavailable, showing samples: properties=%v bookings=%v", propErr, bookErr)
		}
		view.Listings = sampleListings()
		view.Bookings = sampleOwnerBookings()
	} else if len(props.Properties) == 0 {
		view.Listings = sampleListings()
		view.Bookings = sampleOwnerBookings()
	} else {
		view.Listings = listingCards(props.Properties, bookings.Bookings, stats)
		view.Bookings = ownerBookingRows(bookings.Bookings)
		view.Live = true
	}

	view.Stats = ownerStats(view.Listings, view.Revenue)
	return view
}

func listingCards(properties []gateway.Property, bookings []gateway.Booking, stats *metrics.Stats) []ListingCard {
	bookingsPer := make(map[int]int)
	for _, b := range bookings {
		bookingsPer[b.PropertyID]++
	}

	cards := make([]ListingCard, 0, len(properties))
	for _, p := range properties {
		status := "Inactive"
		if p.IsAvailable {
			status = "Active"
		}
		card := ListingCard{
			ID:       p.ID,
			Title:    p.Title,
			Location: propertyLocation(&p),
			Price:    formatMoney(p.PricePerMonth),
			Status:   status,
			Beds:     p.Bedrooms,
			Baths:    int(p.Bathrooms),
			Bookings: bookingsPer[p.ID],
		}
		if p.SquareFeet != nil {
			card.Area = fmt.Sprintf("%d sq ft", *p.SquareFeet)
		}
		if len(p.Images) > 0 {
			card.Image = p.Images[0]
		}
		if stats != nil {
			card.Views = stats.PropertyViews[p.ID]
		}
		cards = append(cards, card)
	}
	return cards
}

func ownerBookingRows(bookings []gateway.Booking) []OwnerBookingRow {
	rows := make([]OwnerBookingRow, 0, len(bookings))
	for _, b := range bookings {
		row := OwnerBookingRow{
			ID:       b.ID,
			CheckIn:  b.StartDate,
			CheckOut: b.EndDate,
			Price:    formatMoney(b.TotalPrice),
			Status:   b.Status,
		}
		if b.Property != nil {
			row.Property = b.Property.Title
		}
		if b.Renter != nil {
			row.Renter = strings.TrimSpace(b.Renter.FirstName + " " + b.Renter.LastName)
		}
		rows = append(rows, row)
	}
	return rows
}

func ownerStats(listings []ListingCard, revenue []MonthRevenue) []StatCard {
	active := 0
	for _, l := range listings {
		if strings.EqualFold(l.Status, "Active") {
			active++
		}
	}
	total := 0
	monthly := 0
	for _, m := range revenue {
		total += m.Amount
		monthly = m.Amount
	}
	return []StatCard{
		{Title: "Total Properties", Value: fmt.Sprintf("%d", len(listings)), Color: "blue"},
		{Title: "Active Listings", Value: fmt.Sprintf("%d", active), Color: "green"},
		{Title: "Total Revenue", Value: formatMoney(float64(total)), Color: "purple"},
		{Title: "Monthly Revenue", Value: formatMoney(float64(monthly)), Color: "orange"},
	}
}
