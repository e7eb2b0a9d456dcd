package figures

import (
	"net/http"

	"github.com/louisbranch/co2explorer/internal/services/explorer/platform/httpx"
	"github.com/louisbranch/co2explorer/internal/services/explorer/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	get := httpx.RequireMethod(http.MethodGet)
	mux.Handle(routepath.FigureMap, get(http.HandlerFunc(h.handleMap)))
	mux.Handle(routepath.FigureScatter, get(http.HandlerFunc(h.handleScatter)))
	mux.HandleFunc(routepath.FiguresPrefix+"{rest...}", h.handleNotFound)
}
