package templates

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/aicopilot/internal/platform/branding"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

// NavItem is one primary navigation link.
type NavItem struct {
	Title string
	Href  string
}

// NavItems are the primary navigation links in display order.
var NavItems = []NavItem{
	{Title: "Playbook", Href: routepath.Playbook},
	{Title: "Framework", Href: routepath.Framework},
	{Title: "Work", Href: routepath.Work},
	{Title: "Talks", Href: routepath.Talks},
	{Title: "Contact", Href: routepath.Contact},
}

func isCurrent(item NavItem, currentPath string) bool {
	return currentPath == item.Href || strings.HasPrefix(currentPath, item.Href+"/")
}

func navLinks(h *htmlWriter, class string, currentPath string) {
	h.open("ul", "class", class)
	for _, item := range NavItems {
		current := ""
		if isCurrent(item, currentPath) {
			current = "page"
		}
		h.open("li")
		h.elem("a", item.Title, "href", item.Href, "aria-current", current)
		h.close("li")
	}
	h.close("ul")
}

// Navigation renders the site header. The mobile menu is a <details>
// disclosure so it works without scripts.
func Navigation(currentPath string) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("nav", "class", "site-nav", "aria-label", "Primary")
		h.open("div", "class", "container nav-bar")
		h.elem("a", branding.AppName, "href", routepath.Root, "class", "brand")
		navLinks(h, "nav-links", currentPath)
		h.open("details", "class", "nav-mobile")
		h.elem("summary", "Menu", "aria-label", "Toggle menu")
		navLinks(h, "nav-mobile-links", currentPath)
		h.close("details")
		h.close("div")
		h.close("nav")
	})
}

// Footer renders the copyright line and legal links.
func Footer(year int) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("footer", "class", "site-footer")
		h.open("div", "class", "container footer-bar")
		h.elem("p", "© "+strconv.Itoa(year)+" "+branding.AppName+". All rights reserved.", "class", "muted")
		h.open("div", "class", "footer-links")
		h.elem("a", "Privacy", "href", "#")
		h.elem("a", "Terms", "href", "#")
		h.close("div")
		h.close("div")
		h.close("footer")
	})
}
