package talks

import (
	"net/http"

	"github.com/louisbranch/aicopilot/internal/content"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/pagerender"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/publichandler"
	webtemplates "github.com/louisbranch/aicopilot/internal/services/web/templates"
)

const (
	pageTitle       = "Talks"
	pageDescription = "Conference talks, workshops and podcasts on applied AI."
)

type handlers struct {
	publichandler.Base
	content *content.Executor
}

func newHandlers(exec *content.Executor, base publichandler.Base) handlers {
	return handlers{Base: base, content: exec}
}

// handleIndex lists talks. An empty list is a successful fetch but still
// renders the fallback.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	talks, err := content.Fetch[[]content.Talk](r.Context(), h.content, content.AllTalksQuery)
	if err != nil || len(talks) == 0 {
		state := webtemplates.UnavailableState(err, webtemplates.TalksMissingState)
		h.WritePage(w, r, pagerender.Page{Title: pageTitle, Description: pageDescription, Body: webtemplates.EmptyState(state)})
		return
	}
	h.WritePage(w, r, pagerender.Page{
		Title:       pageTitle,
		Description: pageDescription,
		Body:        webtemplates.TalksList(talks),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
