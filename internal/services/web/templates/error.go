package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

// NotFound renders the 404 page body.
func NotFound() templ.Component {
	return ErrorPage("Page Not Found", "The page you are looking for does not exist or has moved.")
}

// ErrorPage renders a generic error body with a link home.
func ErrorPage(title, message string) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "container narrow error-page")
		h.elem("h1", title)
		if message != "" {
			h.elem("p", message, "class", "muted")
		}
		h.elem("a", "Back to home", "href", routepath.Root, "class", "button")
		h.close("section")
	})
}
