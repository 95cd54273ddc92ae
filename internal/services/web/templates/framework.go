package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/content/portabletext"
)

// FrameworkPage renders the framework overview with sections in order.
func FrameworkPage(page content.FrameworkPage) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("article", "class", "container")
		h.elem("h1", page.Title)
		if strings.TrimSpace(page.Description) != "" {
			h.elem("p", page.Description, "class", "lead")
		}
		for _, section := range page.SortedSections() {
			h.open("section", "class", "framework-section")
			if strings.TrimSpace(section.Heading) != "" {
				h.elem("h2", section.Heading)
			}
			if !section.Content.Empty() {
				h.open("div", "class", "prose")
				h.render(portabletext.Render(section.Content))
				h.close("div")
			}
			h.close("section")
		}
		h.close("article")
	})
}
