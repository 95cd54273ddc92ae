package work

import (
	"net/http"

	module "github.com/louisbranch/aicopilot/internal/services/web/module"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/publichandler"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

// Module serves the case study index and detail pages.
type Module struct {
	deps module.Dependencies
}

// New returns a work module reading from deps.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "work" }

// Mount wires the work routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	base := publichandler.NewBase(publichandler.WithClock(m.deps.Now))
	registerRoutes(mux, newHandlers(m.deps.Content, m.deps.ImageURL, base))
	return module.Mount{Prefix: routepath.WorkPrefix, Handler: mux}, nil
}
