package dashboard

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/co2explorer/internal/services/explorer/module"
	"github.com/louisbranch/co2explorer/internal/services/explorer/routepath"
)

// Module serves the dashboard page.
type Module struct {
	source       PageSource
	snapshotYear int
	debug        bool
}

// New returns a dashboard module.
func New(source PageSource, snapshotYear int, debug bool) Module {
	return Module{source: source, snapshotYear: snapshotYear, debug: debug}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.source == nil {
		return module.Mount{}, errors.New("dashboard page source is required")
	}
	s, err := newService(m.source, m.snapshotYear)
	if err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(s, m.debug))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
