package modules

import (
	"github.com/louisbranch/aicopilot/internal/services/web/modules/contact"
	"github.com/louisbranch/aicopilot/internal/services/web/modules/framework"
	"github.com/louisbranch/aicopilot/internal/services/web/modules/health"
	"github.com/louisbranch/aicopilot/internal/services/web/modules/home"
	"github.com/louisbranch/aicopilot/internal/services/web/modules/playbook"
	"github.com/louisbranch/aicopilot/internal/services/web/modules/talks"
	"github.com/louisbranch/aicopilot/internal/services/web/modules/work"
)

// Default returns the site's page modules in mount order.
func Default(deps Dependencies) []Module {
	return []Module{
		home.New(deps),
		playbook.New(deps),
		framework.New(deps),
		work.New(deps),
		talks.New(deps),
		contact.New(deps),
		health.New(),
	}
}
