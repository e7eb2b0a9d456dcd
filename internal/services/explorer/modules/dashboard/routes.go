package dashboard

import (
	"net/http"

	"github.com/louisbranch/co2explorer/internal/services/explorer/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.Root+"{rest...}", h.handleNotFound)
}
