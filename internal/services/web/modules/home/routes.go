package home

import (
	"net/http"

	"github.com/louisbranch/aicopilot/internal/services/web/platform/httpx"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.Handle(routepath.Root+"{$}", httpx.AllowMethods(http.MethodGet)(http.HandlerFunc(h.handleHome)))
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
