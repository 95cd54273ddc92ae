package work

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
	mux.Handle(routepath.Work, index)
	mux.Handle(routepath.WorkPrefix+"{$}", index)
	mux.Handle(routepath.CaseStudyPattern, httpx.AllowMethods(http.MethodGet)(http.HandlerFunc(h.handleCaseStudy)))
	mux.HandleFunc(routepath.WorkPrefix, h.handleNotFound)
}
