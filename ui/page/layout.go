// Package page renders the site's server-side pages as templ components.
package page

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// htmlComponent wraps an already-assembled HTML string as a templ component.
func htmlComponent(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

func layout(title, activeNav, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>" + esc(title) + "</title>\n")
	b.WriteString("<link rel=\"stylesheet\" href=\"/static/css/app.css\">\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(navbar(activeNav))
	b.WriteString("<main class=\"page\">\n")
	b.WriteString(body)
	b.WriteString("</main>\n")
	b.WriteString(footer())
	b.WriteString("<script src=\"/static/js/app.js\"></script>\n")
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func navbar(active string) string {
	links := []struct {
		href, label, key string
	}{
		{"/", "Home", "home"},
		{"/rentals", "Rentals", "rentals"},
		{"/about", "About", "about"},
		{"/contact", "Contact", "contact"},
		{"/dashboard", "Dashboard", "dashboard"},
	}
	var b strings.Builder
	b.WriteString("<nav class=\"navbar\"><a class=\"brand\" href=\"/\">Novella</a><ul>")
	for _, l := range links {
		cls := ""
		if l.key == active {
			cls = " class=\"active\""
		}
		b.WriteString("<li" + cls + "><a href=\"" + l.href + "\">" + l.label + "</a></li>")
	}
	b.WriteString("</ul><button id=\"auth-open\" class=\"btn btn-primary\">Sign In</button></nav>\n")
	return b.String()
}

func footer() string {
	return "<footer class=\"footer\"><p>Novella &mdash; find your next home.</p></footer>\n"
}
