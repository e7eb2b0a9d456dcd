package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/co2explorer/internal/services/explorer/routepath"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return "Page not found"
	}
	return "Something went wrong"
}

func errorMessage(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return "The page you requested does not exist."
	}
	return "The dashboard could not handle this request."
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ErrorState renders the error card. detail is shown only when non-empty.
func ErrorState(statusCode int, detail string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="card"><div class="card-body"><h1 class="card-title">`)
		h.text(ErrorPageTitle(statusCode))
		h.raw(`</h1><p class="card-text">`)
		h.text(errorMessage(statusCode))
		h.raw("</p>")
		if detail != "" {
			h.raw(`<pre class="text-danger">`)
			h.text(detail)
			h.raw("</pre>")
		}
		h.raw(`<a class="btn btn-primary"`)
		h.attr("href", routepath.Root)
		h.raw(`>Back to the dashboard</a></div></div>`)
		return h.err
	})
}
