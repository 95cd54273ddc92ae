package framework

import (
	"net/http"

	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/pagerender"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/publichandler"
	webtemplates "github.com/louisbranch/aicopilot/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	content *content.Executor
}

func newHandlers(exec *content.Executor, base publichandler.Base) handlers {
	return handlers{Base: base, content: exec}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := content.Fetch[content.FrameworkPage](r.Context(), h.content, content.FrameworkPageQuery)
	if err != nil {
		state := webtemplates.UnavailableState(err, webtemplates.FrameworkMissingState)
		h.WritePage(w, r, pagerender.Page{Title: "Framework", Body: webtemplates.EmptyState(state)})
		return
	}
	h.WritePage(w, r, pagerender.Page{
		Title:       page.SEO.TitleOr(page.Title),
		Description: page.SEO.DescriptionOr(page.Description),
		Body:        webtemplates.FrameworkPage(page),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
