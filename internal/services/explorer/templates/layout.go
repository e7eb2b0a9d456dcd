package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/co2explorer/internal/services/explorer/routepath"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Title string
	Lang  string
}

// Layout wraps body in the document shell.
func Layout(page PageContext, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := page.Lang
		if lang == "" {
			lang = "en"
		}
		h := &htmlWriter{w: w}
		h.raw("<!DOCTYPE html><html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(page.Title)
		h.raw("</title>")
		for _, href := range []string{BootstrapCSS, BootstrapDBC, routepath.StaticFile("explorer.css")} {
			h.raw(`<link rel="stylesheet"`)
			h.attr("href", href)
			h.raw(">")
		}
		h.raw(`<script defer`)
		h.attr("src", PlotlyJS)
		h.raw(`></script><script defer`)
		h.attr("src", BootstrapJS)
		h.raw(`></script><script defer`)
		h.attr("src", routepath.StaticFile("explorer.js"))
		h.raw(`></script></head><body><main class="container dbc py-3">`)
		h.component(ctx, body)
		h.raw("</main></body></html>")
		return h.err
	})
}
