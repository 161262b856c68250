package page

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/yussufhh/Novella/internal/dashboard"
)

func RenterDashboardPage(view dashboard.RenterView) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"dashboard\">")
	b.WriteString(dashboardHeader(view.Name, view.Email, view.MemberSince))
	b.WriteString(sidebar(view.Tabs, view.ActiveTab))
	b.WriteString("<div class=\"panel\">")

	switch view.ActiveTab {
	case dashboard.TabBookings:
		b.WriteString(renterBookings(view))
	case dashboard.TabFavorites:
		b.WriteString(renterFavorites(view))
	case dashboard.TabPayments:
		b.WriteString(renterPayments(view))
	default:
		b.WriteString(statCards(view.Stats))
		b.WriteString(renterBookings(view))
	}

	b.WriteString("</div></section>\n")
	return htmlComponent(layout("Novella | Dashboard", "dashboard", b.String()))
}

func OwnerDashboardPage(view dashboard.OwnerView) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"dashboard\">")
	b.WriteString(dashboardHeader(view.Name, view.Email, view.MemberSince))
	b.WriteString(sidebar(view.Tabs, view.ActiveTab))
	b.WriteString("<div class=\"panel\">")

	switch view.ActiveTab {
	case dashboard.TabProperties:
		b.WriteString(ownerListings(view))
	case dashboard.TabBookings:
		b.WriteString(ownerBookings(view))
	case dashboard.TabRevenue:
		b.WriteString(ownerRevenue(view))
	case dashboard.TabReviews:
		b.WriteString(ownerReviews(view))
	default:
		b.WriteString(statCards(view.Stats))
		b.WriteString(ownerListings(view))
	}

	b.WriteString("</div></section>\n")
	return htmlComponent(layout("Novella | Dashboard", "dashboard", b.String()))
}

func dashboardHeader(name, email, since string) string {
	var b strings.Builder
	b.WriteString("<header class=\"dash-header\"><h1>" + esc(name) + "</h1>")
	b.WriteString("<p>" + esc(email) + "</p>")
	if since != "" {
		b.WriteString("<p class=\"muted\">Member since " + esc(since) + "</p>")
	}
	b.WriteString("</header>")
	return b.String()
}

func sidebar(tabs []dashboard.TabItem, active dashboard.Tab) string {
	var b strings.Builder
	b.WriteString("<aside class=\"sidebar\"><ul>")
	for _, t := range tabs {
		cls := ""
		if t.ID == active {
			cls = " class=\"active\""
		}
		b.WriteString("<li" + cls + "><a href=\"/dashboard?tab=" + templ.EscapeString(string(t.ID)) + "\">" + esc(t.Name) + "</a></li>")
	}
	b.WriteString("</ul><button id=\"logout\" class=\"btn btn-danger\">Logout</button></aside>")
	return b.String()
}

func statCards(stats []dashboard.StatCard) string {
	var b strings.Builder
	b.WriteString("<div class=\"stat-cards\">")
	for _, s := range stats {
		b.WriteString("<div class=\"stat stat-" + esc(s.Color) + "\"><span>" + esc(s.Title) + "</span><strong>" + esc(s.Value) + "</strong></div>")
	}
	b.WriteString("</div>")
	return b.String()
}

func statusBadge(variant dashboard.Variant, status string) string {
	return "<span class=\"badge " + esc(dashboard.StatusStyle(variant, status)) + "\">" + esc(status) + "</span>"
}

func renterBookings(view dashboard.RenterView) string {
	var b strings.Builder
	b.WriteString("<h2>My Bookings</h2><ul class=\"rows\">")
	for _, bk := range view.Bookings {
		b.WriteString("<li><strong>" + esc(bk.Property) + "</strong> " + esc(bk.Location))
		b.WriteString(" <span class=\"dates\">" + esc(bk.CheckIn) + " to " + esc(bk.CheckOut) + "</span>")
		b.WriteString(" <span class=\"price\">" + esc(bk.Price) + "</span> ")
		b.WriteString(statusBadge(view.Variant, bk.Status))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

func renterFavorites(view dashboard.RenterView) string {
	var b strings.Builder
	b.WriteString("<h2>Favorites</h2><div class=\"grid\">")
	for _, f := range view.Favorites {
		b.WriteString("<article class=\"card\"><h3>" + esc(f.Title) + "</h3>")
		b.WriteString("<p class=\"location\">" + esc(f.Location) + "</p>")
		b.WriteString("<p class=\"price\">" + esc(f.Price) + "</p>")
		b.WriteString(fmt.Sprintf("<p class=\"muted\">%d bd &middot; %d ba &middot; %s</p>", f.Beds, f.Baths, esc(f.Area)))
		b.WriteString("</article>")
	}
	b.WriteString("</div>")
	return b.String()
}

func renterPayments(view dashboard.RenterView) string {
	var b strings.Builder
	b.WriteString("<h2>Payments</h2><ul class=\"rows\">")
	for _, p := range view.Payments {
		b.WriteString("<li><strong>" + esc(p.Property) + "</strong> " + esc(p.Date))
		b.WriteString(" <span class=\"price\">" + esc(p.Amount) + "</span> " + esc(p.Method) + " ")
		b.WriteString(statusBadge(view.Variant, p.Status))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

func ownerListings(view dashboard.OwnerView) string {
	var b strings.Builder
	b.WriteString("<h2>My Properties</h2><div class=\"grid\">")
	for _, l := range view.Listings {
		b.WriteString("<article class=\"card\"><h3>" + esc(l.Title) + "</h3>")
		b.WriteString("<p class=\"location\">" + esc(l.Location) + "</p>")
		b.WriteString("<p class=\"price\">" + esc(l.Price) + "/mo</p>")
		b.WriteString(fmt.Sprintf("<p class=\"muted\">%d views &middot; %d bookings</p>", l.Views, l.Bookings))
		b.WriteString(statusBadge(view.Variant, l.Status))
		b.WriteString("</article>")
	}
	b.WriteString("</div>")
	return b.String()
}

func ownerBookings(view dashboard.OwnerView) string {
	var b strings.Builder
	b.WriteString("<h2>Bookings</h2><ul class=\"rows\">")
	for _, bk := range view.Bookings {
		b.WriteString("<li><strong>" + esc(bk.Property) + "</strong> " + esc(bk.Renter))
		b.WriteString(" <span class=\"dates\">" + esc(bk.CheckIn) + " to " + esc(bk.CheckOut) + "</span>")
		b.WriteString(" <span class=\"price\">" + esc(bk.Price) + "</span> ")
		b.WriteString(statusBadge(view.Variant, bk.Status))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

func ownerRevenue(view dashboard.OwnerView) string {
	var b strings.Builder
	b.WriteString("<h2>Revenue</h2><div class=\"bars\">")
	for _, m := range view.Revenue {
		b.WriteString("<div class=\"bar\"><span>" + esc(m.Month) + "</span><strong>$" + strconv.Itoa(m.Amount) + "</strong></div>")
	}
	b.WriteString("</div>")
	return b.String()
}

func ownerReviews(view dashboard.OwnerView) string {
	var b strings.Builder
	b.WriteString("<h2>Reviews</h2><ul class=\"rows\">")
	for _, rv := range view.Reviews {
		b.WriteString("<li><strong>" + esc(rv.Property) + "</strong> " + esc(rv.Renter))
		b.WriteString(fmt.Sprintf(" <span class=\"rating\">%d/5</span>", rv.Rating))
		b.WriteString("<p>" + esc(rv.Comment) + "</p></li>")
	}
	b.WriteString("</ul>")
	return b.String()
}
