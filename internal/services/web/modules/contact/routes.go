package contact

import (
	"net/http"

	"github.com/louisbranch/aicopilot/internal/services/web/platform/httpx"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	page := httpx.AllowMethods(http.MethodGet, http.MethodPost)(http.HandlerFunc(h.handlePage))
	mux.Handle(routepath.Contact, page)
	mux.Handle(routepath.ContactPrefix+"{$}", page)
	mux.HandleFunc(routepath.ContactPrefix, h.handleNotFound)
}
