// Package assets serves the embedded stylesheet and script.
package assets

import (
	"errors"
	"io/fs"
	"net/http"

	module "github.com/louisbranch/co2explorer/internal/services/explorer/module"
	"github.com/louisbranch/co2explorer/internal/services/explorer/routepath"
	"github.com/louisbranch/co2explorer/internal/services/explorer/static"
)

// Module serves files under /static/.
type Module struct {
	files fs.FS
}

// New returns an assets module over files, or the embedded assets when nil.
func New(files fs.FS) Module {
	if files == nil {
		files = static.FS
	}
	return Module{files: files}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "assets" }

// Mount wires the static file server.
func (m Module) Mount() (module.Mount, error) {
	if m.files == nil {
		return module.Mount{}, errors.New("static files are required")
	}
	fileServer := http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(m.files))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.URL.Path == routepath.StaticPrefix {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	})
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: handler}, nil
}
