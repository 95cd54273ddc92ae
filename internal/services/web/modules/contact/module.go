package contact

import (
	"net/http"

	module "github.com/louisbranch/aicopilot/internal/services/web/module"
	"github.com/louisbranch/aicopilot/internal/services/web/platform/publichandler"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

// Module serves the contact form and stores submissions.
type Module struct {
	deps module.Dependencies
}

// New returns a contact module. Submissions fail with 503 when deps has no
// contact store.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount wires the contact routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	base := publichandler.NewBase(publichandler.WithClock(m.deps.Now))
	registerRoutes(mux, newHandlers(newService(m.deps.Contact, m.deps.Clock), base))
	return module.Mount{Prefix: routepath.ContactPrefix, Handler: mux}, nil
}
