package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/content/portabletext"
)

// PlaybookPage renders the playbook with its optional PDF download.
func PlaybookPage(page content.Playbook) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("article", "class", "container narrow")
		h.elem("h1", page.Title)
		if strings.TrimSpace(page.Description) != "" {
			h.elem("p", page.Description, "class", "lead")
		}
		if asset, ok := page.Download(); ok {
			h.open("div", "class", "download")
			h.elem("a", "Download Playbook",
				"href", safeURL(asset.URL),
				"download", asset.OriginalFilename,
				"target", "_blank",
				"rel", "noopener noreferrer",
				"class", "button",
			)
			label := strings.TrimSpace(asset.OriginalFilename)
			if size := FileSizeLabel(asset.Size); size != "" {
				if label != "" {
					label += " · "
				}
				label += size
			}
			if label != "" {
				h.elem("span", label, "class", "muted")
			}
			h.close("div")
		}
		if !page.Content.Empty() {
			h.open("div", "class", "prose")
			h.render(portabletext.Render(page.Content))
			h.close("div")
		}
		h.close("article")
	})
}
