package work

import (
	"net/http"
	"strings"

	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/pagerender"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/publichandler"
	webtemplates "github.com/louisbranch/aicopilot/internal/services/web/templates"
)

const (
	pageTitle       = "Work"
	pageDescription = "Case studies from teams putting AI into production."
)

type handlers struct {
	publichandler.Base
	content *content.Executor
	images  webtemplates.ImageResolver
}

func newHandlers(exec *content.Executor, images webtemplates.ImageResolver, base publichandler.Base) handlers {
	return handlers{Base: base, content: exec, images: images}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	studies, err := content.Fetch[[]content.CaseStudy](r.Context(), h.content, content.AllCaseStudiesQuery)
	if err != nil || len(studies) == 0 {
		state := webtemplates.UnavailableState(err, webtemplates.WorkMissingState)
		h.WritePage(w, r, pagerender.Page{Title: pageTitle, Description: pageDescription, Body: webtemplates.EmptyState(state)})
		return
	}
	h.WritePage(w, r, pagerender.Page{
		Title:       pageTitle,
		Description: pageDescription,
		Body:        webtemplates.WorkList(studies, h.images),
	})
}

// handleCaseStudy renders one case study. Every kind of absence, including
// a missing content configuration, is a 404.
func (h handlers) handleCaseStudy(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if strings.TrimSpace(slug) == "" {
		h.WriteNotFound(w, r)
		return
	}
	study, err := content.Fetch[content.CaseStudy](r.Context(), h.content, content.CaseStudyBySlugQuery(slug))
	if err != nil {
		h.WriteNotFound(w, r)
		return
	}
	h.WritePage(w, r, pagerender.Page{
		Title:       study.SEO.TitleOr(study.Title),
		Description: study.SEO.DescriptionOr(study.Excerpt),
		Body:        webtemplates.CaseStudyDetail(study, h.images),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
