package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/content/portabletext"
	"github.com/louisbranch/aicopilot/internal/content/sanity"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

// ImageResolver turns an image field into a URL scaled to width. It returns
// "" when the image cannot be resolved.
type ImageResolver func(img *sanity.Image, width int) string

const (
	cardImageWidth   = 800
	detailImageWidth = 1600
)

func (resolve ImageResolver) url(img *sanity.Image, width int) string {
	if resolve == nil || img.AssetRef() == "" {
		return ""
	}
	return resolve(img, width)
}

func image(h *htmlWriter, src string, alt string, class string) {
	if src == "" {
		return
	}
	h.raw("<img")
	h.raw(` src="` + templ.EscapeString(safeURL(src)) + `"`)
	h.raw(` alt="` + templ.EscapeString(alt) + `"`)
	if class != "" {
		h.raw(` class="` + templ.EscapeString(class) + `"`)
	}
	h.raw(` loading="lazy">`)
}

func imageAlt(img *sanity.Image, fallback string) string {
	if img != nil && strings.TrimSpace(img.Alt) != "" {
		return img.Alt
	}
	return fallback
}

// WorkList renders the case study index.
func WorkList(studies []content.CaseStudy, images ImageResolver) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "container")
		h.elem("h1", "Work")
		h.elem("p", "Case studies from teams putting AI into production.", "class", "lead")
		h.open("ul", "class", "card-list")
		for _, study := range studies {
			h.open("li", "class", "card")
			image(h, images.url(study.FeaturedImage, cardImageWidth), imageAlt(study.FeaturedImage, study.Title), "card-image")
			h.elem("h2", study.Title)
			metaLine(h, "meta muted", study.PublishedAt, study.Client, study.Industry)
			if strings.TrimSpace(study.Excerpt) != "" {
				h.elem("p", study.Excerpt)
			}
			tagList(h, study.Tags)
			if slug := strings.TrimSpace(study.Slug.Current); slug != "" {
				h.elem("a", "Read case study", "href", routepath.CaseStudy(slug), "class", "card-link")
			}
			h.close("li")
		}
		h.close("ul")
		h.close("section")
	})
}

// CaseStudyDetail renders one case study with its body sections.
func CaseStudyDetail(study content.CaseStudy, images ImageResolver) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("article", "class", "container narrow case-study")
		h.elem("a", "← All work", "href", routepath.Work, "class", "back-link")
		h.elem("h1", study.Title)
		metaLine(h, "meta muted", study.PublishedAt, study.Client, study.Industry)
		if strings.TrimSpace(study.Excerpt) != "" {
			h.elem("p", study.Excerpt, "class", "lead")
		}
		image(h, images.url(study.FeaturedImage, detailImageWidth), imageAlt(study.FeaturedImage, study.Title), "hero-image")
		for _, section := range study.Sections {
			caseStudySection(h, section, images)
		}
		if len(study.Tags) > 0 {
			h.open("footer", "class", "case-study-footer")
			tagList(h, study.Tags)
			h.close("footer")
		}
		h.close("article")
	})
}

func caseStudySection(h *htmlWriter, section content.CaseStudySection, images ImageResolver) {
	h.open("section", "class", "case-study-section")
	if strings.TrimSpace(section.Heading) != "" {
		h.elem("h2", section.Heading)
	}
	switch section.SectionType {
	case content.SectionStats:
		if len(section.Stats) > 0 {
			h.open("dl", "class", "stats")
			for _, stat := range section.Stats {
				h.open("div", "class", "stat")
				h.elem("dt", stat.Label)
				h.elem("dd", stat.Value)
				h.close("div")
			}
			h.close("dl")
		}
	case content.SectionImage:
		if src := images.url(section.Image, detailImageWidth); src != "" {
			h.open("figure")
			image(h, src, imageAlt(section.Image, section.Heading), "")
			h.close("figure")
		}
		prose(h, section.Content)
	case content.SectionQuote:
		if !section.Content.Empty() {
			h.open("blockquote", "class", "pull-quote")
			h.render(portabletext.Render(section.Content))
			h.close("blockquote")
		}
	default:
		prose(h, section.Content)
	}
	h.close("section")
}

func prose(h *htmlWriter, blocks portabletext.Blocks) {
	if blocks.Empty() {
		return
	}
	h.open("div", "class", "prose")
	h.render(portabletext.Render(blocks))
	h.close("div")
}
