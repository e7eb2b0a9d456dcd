package dashboard

import (
	"bytes"
	"net/http"

	"github.com/louisbranch/co2explorer/internal/services/explorer/platform/httpx"
	"github.com/louisbranch/co2explorer/internal/services/explorer/platform/i18n"
	"github.com/louisbranch/co2explorer/internal/services/explorer/platform/weberror"
	"github.com/louisbranch/co2explorer/internal/services/explorer/templates"
)

const pageTitle = "CO2 explorer"

type handlers struct {
	service service
	debug   bool
}

func newHandlers(s service, debug bool) handlers {
	return handlers{service: s, debug: debug}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := templates.PageContext{Title: pageTitle, Lang: i18n.ResolveTag(r).String()}
	var buf bytes.Buffer
	if err := templates.Layout(page, templates.Dashboard(h.service.dashboard())).Render(httpx.RequestContext(r), &buf); err != nil {
		weberror.WriteModuleError(w, r, err, h.debug)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WritePage(w, r, http.StatusNotFound, "")
}
