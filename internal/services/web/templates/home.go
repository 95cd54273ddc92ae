package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/platform/branding"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

// HomePage renders the hero and the featured work list.
func HomePage(page content.HomePage) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "container hero")
		h.elem("h1", page.Headline)
		if strings.TrimSpace(page.Subheadline) != "" {
			h.elem("p", page.Subheadline, "class", "lead")
		}
		if page.HasCTA() {
			h.elem("a", page.CTAText, "href", safeURL(page.CTALink), "class", "button")
		}
		h.close("section")

		var featured []content.CaseStudy
		for _, study := range page.FeaturedWork {
			if strings.TrimSpace(study.Title) != "" {
				featured = append(featured, study)
			}
		}
		if len(featured) == 0 {
			return
		}
		h.open("section", "class", "container featured")
		h.elem("h2", "Featured Work")
		h.open("ul", "class", "card-list")
		for _, study := range featured {
			h.open("li", "class", "card")
			if slug := strings.TrimSpace(study.Slug.Current); slug != "" {
				h.elem("a", study.Title, "href", routepath.CaseStudy(slug))
			} else {
				h.elem("span", study.Title)
			}
			if study.Excerpt != "" {
				h.elem("p", study.Excerpt, "class", "muted")
			}
			h.close("li")
		}
		h.close("ul")
		h.close("section")
	})
}

// HomeFallback is the home page shown when the content source is not
// configured: a static hero followed by setup instructions.
func HomeFallback() templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "container hero")
		h.elem("h1", branding.Tagline)
		h.elem("p", "Playbooks, frameworks and case studies for teams putting AI to work.", "class", "lead")
		h.close("section")
		h.render(EmptyState(NotConfiguredState(true)))
	})
}
