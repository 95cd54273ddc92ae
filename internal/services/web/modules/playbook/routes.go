package playbook

import (
	"net/http"

	"github.com/louisbranch/aicopilot/internal/services/web/platform/httpx"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	index := httpx.AllowMethods(http.MethodGet)(http.HandlerFunc(h.handleIndex))
	mux.Handle(routepath.Playbook, index)
	mux.Handle(routepath.PlaybookPrefix+"{$}", index)
	mux.HandleFunc(routepath.PlaybookPrefix, h.handleNotFound)
}
