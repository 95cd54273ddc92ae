package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/aicopilot/internal/platform/branding"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

// PageMeta describes the document head and chrome state for one page.
type PageMeta struct {
	Title       string
	Description string
	CurrentPath string
	Year        int
}

// DocumentTitle returns the <title> text for meta.
func DocumentTitle(meta PageMeta) string {
	title := strings.TrimSpace(meta.Title)
	if title == "" || title == branding.AppName {
		return branding.AppName
	}
	return title + " | " + branding.AppName
}

// Layout wraps its children in the document shell with navigation and footer.
func Layout(meta PageMeta) templ.Component {
	description := strings.TrimSpace(meta.Description)
	if description == "" {
		description = branding.Tagline
	}
	return component(func(h *htmlWriter) {
		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", "en")
		h.open("head")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.elem("title", DocumentTitle(meta))
		h.open("meta", "name", "description", "content", description)
		h.open("link", "rel", "stylesheet", "href", routepath.StaticPrefix+"site.css")
		h.close("head")
		h.open("body")
		h.render(Navigation(meta.CurrentPath))
		h.open("main", "class", "site-main")
		h.children()
		h.close("main")
		h.render(Footer(meta.Year))
		h.close("body")
		h.close("html")
	})
}
