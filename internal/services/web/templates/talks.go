package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/aicopilot/internal/content"
)

// TalkStatusLabel returns the badge text for a talk status.
func TalkStatusLabel(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case content.TalkUpcoming:
		return "Upcoming"
	case content.TalkPast:
		return "Past"
	case content.TalkCancelled:
		return "Cancelled"
	default:
		return ""
	}
}

// TalksList renders talks with status badges and links.
func TalksList(talks []content.Talk) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "container")
		h.elem("h1", "Talks")
		h.elem("p", "Conference talks, workshops and podcasts.", "class", "lead")
		h.open("ul", "class", "talk-list")
		for _, talk := range talks {
			h.open("li", "class", "talk")
			h.open("div", "class", "talk-header")
			if label := TalkStatusLabel(talk.Status); label != "" {
				h.elem("span", label, "class", "badge badge-"+strings.ToLower(strings.TrimSpace(talk.Status)))
			}
			if label := TalkTypeLabel(talk.Type); label != "" {
				h.elem("span", label, "class", "talk-type muted")
			}
			h.close("div")
			h.elem("h2", talk.Title)
			metaLine(h, "meta muted", talk.Date, talk.Venue, talk.Location)
			if strings.TrimSpace(talk.Description) != "" {
				h.elem("p", talk.Description)
			}
			talkLinks(h, talk)
			h.close("li")
		}
		h.close("ul")
		h.close("section")
	})
}

func talkLinks(h *htmlWriter, talk content.Talk) {
	recording := strings.TrimSpace(talk.RecordingURL)
	slides := strings.TrimSpace(talk.SlidesURL)
	if recording == "" && slides == "" {
		return
	}
	h.open("div", "class", "talk-links")
	if recording != "" {
		h.elem("a", "Watch Recording", "href", safeURL(recording), "target", "_blank", "rel", "noopener noreferrer")
	}
	if slides != "" {
		h.elem("a", "View Slides", "href", safeURL(slides), "target", "_blank", "rel", "noopener noreferrer")
	}
	h.close("div")
}
