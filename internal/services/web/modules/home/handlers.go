package home

import (
	"net/http"

	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/platform/branding"
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

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	page, err := content.Fetch[content.HomePage](r.Context(), h.content, content.HomePageQuery)
	if err != nil {
		body := webtemplates.HomeFallback()
		if content.ReasonOf(err) != content.ReasonNotConfigured {
			body = webtemplates.EmptyState(webtemplates.HomeMissingState)
		}
		h.WritePage(w, r, pagerender.Page{Title: branding.AppName, Body: body})
		return
	}
	h.WritePage(w, r, pagerender.Page{
		Title:       page.SEO.TitleOr(branding.AppName),
		Description: page.SEO.DescriptionOr(page.Subheadline),
		Body:        webtemplates.HomePage(page),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
