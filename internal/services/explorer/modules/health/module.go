// Package health serves the liveness probe.
package health

import (
	"net/http"

	module "github.com/louisbranch/co2explorer/internal/services/explorer/module"
	"github.com/louisbranch/co2explorer/internal/services/explorer/routepath"
)

// Module answers /healthz.
type Module struct {
	ready func() bool
}

// New returns a health module. A nil ready func reports ready.
func New(ready func() bool) Module {
	return Module{ready: ready}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "health" }

// Mount wires the health route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Healthz, m.handleHealth)
	return module.Mount{Prefix: routepath.Healthz, Handler: mux}, nil
}

func (m Module) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if m.ready != nil && !m.ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading\n"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
