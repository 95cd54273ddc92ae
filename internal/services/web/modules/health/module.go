// Package health serves the liveness check.
package health

import (
	"net/http"

	module "github.com/louisbranch/aicopilot/internal/services/web/module"
	"github.com/louisbranch/aicopilot/internal/services/web/routepath"
)

// Module answers liveness checks without touching the content source.
type Module struct{}

// New returns a health module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "health" }

// Mount wires the health route.
func (Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux)
	return module.Mount{Prefix: routepath.HealthPrefix, Handler: mux}, nil
}
