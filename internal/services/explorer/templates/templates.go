// Package templates renders explorer pages as templ components.
package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// External stylesheets and scripts loaded by every page.
const (
	BootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
	BootstrapDBC = "https://cdn.jsdelivr.net/gh/AnnMarieW/dash-bootstrap-templates@V1.0.2/dbc.min.css"
	BootstrapJS  = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"
	PlotlyJS     = "https://cdn.plot.ly/plotly-2.35.2.min.js"
)

// htmlWriter writes markup and keeps the first error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
