// Package figures serves the view-update endpoints behind the dashboard
// selectors.
package figures

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/co2explorer/internal/services/explorer/module"
	"github.com/louisbranch/co2explorer/internal/services/explorer/routepath"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/co2explorer/internal/services/explorer/modules/figures"

// Module provides the map and scatter update routes.
type Module struct {
	source Source
	debug  bool
	tracer trace.Tracer
}

// Option customizes a Module.
type Option func(*Module)

// WithTracer overrides the global tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(m *Module) {
		if tracer != nil {
			m.tracer = tracer
		}
	}
}

// New returns a figures module.
func New(source Source, debug bool, opts ...Option) Module {
	m := Module{source: source, debug: debug, tracer: otel.Tracer(tracerName)}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "figures" }

// Mount wires figure route handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.source == nil {
		return module.Mount{}, errors.New("figure source is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.source, m.tracer, m.debug))
	return module.Mount{Prefix: routepath.FiguresPrefix, Handler: mux}, nil
}
