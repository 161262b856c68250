package page

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/yussufhh/Novella/internal/rentals"
)

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func HomePage() templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"hero\">")
	b.WriteString("<h1>Find Your Perfect Rental Home</h1>")
	b.WriteString("<p>Browse apartments, villas, studios, and family homes across Kenya.</p>")
	b.WriteString("<form class=\"search\" action=\"/rentals\" method=\"get\">")
	b.WriteString("<input type=\"text\" name=\"city\" placeholder=\"Search by city...\">")
	b.WriteString("<button type=\"submit\" class=\"btn btn-primary\">Search</button>")
	b.WriteString("</form></section>\n")
	b.WriteString("<section class=\"categories\">")
	for _, cat := range rentals.Categories() {
		b.WriteString("<a class=\"chip\" href=\"/rentals?category=" + url.QueryEscape(string(cat)) + "\">" + esc(string(cat)) + "</a>")
	}
	b.WriteString("</section>\n")
	return htmlComponent(layout("Novella | Home", "home", b.String()))
}

func AboutPage() templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"prose\">")
	b.WriteString("<h1>About Novella</h1>")
	b.WriteString("<p>Novella connects renters with property owners directly. Owners list and manage their properties; renters browse, book, and track their stays from one dashboard.</p>")
	b.WriteString("<p>Every listing is managed by its owner, and every booking goes through a simple request and approval flow.</p>")
	b.WriteString("</section>\n")
	return htmlComponent(layout("Novella | About", "about", b.String()))
}

func ContactPage() templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"prose\">")
	b.WriteString("<h1>Contact Us</h1>")
	b.WriteString("<p>Questions about a listing or your account? Reach us at <a href=\"mailto:hello@novella.example\">hello@novella.example</a>.</p>")
	b.WriteString("</section>\n")
	return htmlComponent(layout("Novella | Contact", "contact", b.String()))
}

// RentalsPage renders the browse view for the given snapshot. The four view
// states are mutually exclusive; the error state still shows the last good
// results underneath the error block.
func RentalsPage(view rentals.View) templ.Component {
	var b strings.Builder
	b.WriteString("<section class=\"browse\">")
	b.WriteString("<h1>Browse Rentals</h1>")

	b.WriteString("<form class=\"search\" action=\"/rentals\" method=\"get\">")
	b.WriteString("<input type=\"text\" name=\"city\" value=\"" + esc(view.City) + "\" placeholder=\"Search by city...\">")
	b.WriteString("<button type=\"submit\" class=\"btn btn-primary\">Search</button>")
	b.WriteString("</form>")

	b.WriteString("<div class=\"chips\">")
	for _, cat := range rentals.Categories() {
		cls := "chip"
		if cat == view.Category {
			cls = "chip chip-active"
		}
		b.WriteString("<a class=\"" + cls + "\" href=\"/rentals?category=" + url.QueryEscape(string(cat)) + "\">" + esc(string(cat)) + "</a>")
	}
	b.WriteString("</div>")

	switch view.State {
	case rentals.StateLoading:
		b.WriteString("<div class=\"state state-loading\">Loading properties...</div>")
	case rentals.StateError:
		b.WriteString("<div class=\"state state-error\"><p>" + esc(view.Error) + "</p>")
		b.WriteString("<a class=\"btn\" href=\"/rentals?retry=1\">Try Again</a></div>")
		b.WriteString(propertyGrid(view))
	case rentals.StateEmpty:
		b.WriteString("<div class=\"state state-empty\">No properties found. Try a different search.</div>")
	default:
		b.WriteString(propertyGrid(view))
	}

	b.WriteString("</section>\n")
	return htmlComponent(layout("Novella | Rentals", "rentals", b.String()))
}

func propertyGrid(view rentals.View) string {
	if len(view.Properties) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<div class=\"grid\">")
	for _, p := range view.Properties {
		b.WriteString("<article class=\"card\">")
		if len(p.Images) > 0 {
			b.WriteString("<img src=\"" + esc(p.Images[0]) + "\" alt=\"" + esc(p.Title) + "\">")
		}
		b.WriteString("<h3>" + esc(p.Title) + "</h3>")
		b.WriteString("<p class=\"location\">" + esc(p.City) + "</p>")
		b.WriteString("<p class=\"price\">$" + trimFloat(p.PricePerMonth) + "/mo</p>")
		b.WriteString("</article>")
	}
	b.WriteString("</div>")
	return b.String()
}
