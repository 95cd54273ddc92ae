package health

import (
	"net/http"

	"github.com/louisbranch/aicopilot/internal/services/web/platform/httpx"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux) {
	if mux == nil {
		return
	}
	mux.Handle(routepath.Health, httpx.AllowMethods(http.MethodGet)(http.HandlerFunc(handleHealth)))
	mux.HandleFunc(routepath.HealthPrefix, http.NotFound)
}
