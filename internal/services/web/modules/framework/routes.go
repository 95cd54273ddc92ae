package framework

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
	mux.Handle(routepath.Framework, index)
	mux.Handle(routepath.FrameworkPrefix+"{$}", index)
	mux.HandleFunc(routepath.FrameworkPrefix, h.handleNotFound)
}
