package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/aicopilot/internal/content"
)

// EmptyStateView is the fallback shown when page content is unavailable.
type EmptyStateView struct {
	Title        string
	Description  string
	Instructions []string
}

// EmptyState renders a fallback card with optional setup instructions.
func EmptyState(view EmptyStateView) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("div", "class", "container empty-state")
		h.open("div", "class", "empty-card")
		h.elem("h1", view.Title)
		h.elem("p", view.Description, "class", "muted")
		if len(view.Instructions) > 0 {
			h.open("div", "class", "instructions")
			h.elem("p", "Setup Instructions:", "class", "instructions-title")
			h.open("ol")
			for _, step := range view.Instructions {
				h.elem("li", step)
			}
			h.close("ol")
			h.close("div")
		}
		h.close("div")
		h.close("div")
	})
}

var setupInstructions = []string{
	"Copy .env.local.example to .env.local",
	"Add your SANITY_PROJECT_ID",
	"Add your SANITY_DATASET",
	"Restart the web server",
}

// NotConfiguredState is shown when the content source is not configured.
func NotConfiguredState(withInstructions bool) EmptyStateView {
	view := EmptyStateView{
		Title:       "Sanity Not Configured",
		Description: "Please configure your Sanity project credentials in .env.local",
	}
	if withInstructions {
		view.Instructions = setupInstructions
	}
	return view
}

// UnavailableState picks the fallback for a failed page fetch: setup
// instructions when the content source is not configured, otherwise the
// page's own missing-content view.
func UnavailableState(err error, missing EmptyStateView) EmptyStateView {
	if content.ReasonOf(err) == content.ReasonNotConfigured {
		return NotConfiguredState(true)
	}
	return missing
}

// Missing-content fallbacks, one per page.
var (
	HomeMissingState = EmptyStateView{
		Title:       "Home Page Content Missing",
		Description: "Create the homePage document in Sanity Studio to see content here.",
		Instructions: []string{
			"Open Sanity Studio",
			`Click on "Home Page" in the sidebar`,
			"Add your headline, subheadline, and CTA",
			"Publish the document",
		},
	}
	PlaybookMissingState = EmptyStateView{
		Title:       "Playbook Content Missing",
		Description: "Create the playbook document in Sanity Studio.",
		Instructions: []string{
			"Open Sanity Studio",
			`Click on "Playbook" in the sidebar`,
			"Add title, description, and content",
			"Upload a PDF file (optional)",
			"Publish the document",
		},
	}
	FrameworkMissingState = EmptyStateView{
		Title:       "Framework Content Missing",
		Description: "Create the frameworkPage document in Sanity Studio.",
		Instructions: []string{
			"Open Sanity Studio",
			`Click on "Framework Page" in the sidebar`,
			"Add title, description, and sections",
			"Publish the document",
		},
	}
	WorkMissingState = EmptyStateView{
		Title:       "No Case Studies Yet",
		Description: "Create your first case study in Sanity Studio.",
		Instructions: []string{
			"Open Sanity Studio",
			`Click on "Case Studies" in the sidebar`,
			`Click "Create new Case Study"`,
			"Fill in the details and publish",
		},
	}
	TalksMissingState = EmptyStateView{
		Title:       "No Talks Yet",
		Description: "Create your first talk in Sanity Studio.",
		Instructions: []string{
			"Open Sanity Studio",
			`Click on "Talks" in the sidebar`,
			`Click "Create new Talk"`,
			"Fill in the details and publish",
		},
	}
)
