// Package weberror renders shared error responses for explorer modules.
package weberror

import (
	"bytes"
	"log"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/co2explorer/internal/services/explorer/platform/errors"
	"github.com/louisbranch/co2explorer/internal/services/explorer/platform/httpx"
	"github.com/louisbranch/co2explorer/internal/services/explorer/platform/i18n"
	"github.com/louisbranch/co2explorer/internal/services/explorer/templates"
)

// ShouldRenderPage reports whether status should use the error page UX.
func ShouldRenderPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe error message. Client errors keep their
// message; server errors only expose it in debug mode.
func PublicMessage(err error, debug bool) string {
	if err == nil {
		return ""
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if statusCode < http.StatusInternalServerError || debug {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			return msg
		}
	}
	return http.StatusText(statusCode)
}

// WriteJSONError writes err as a JSON error body.
func WriteJSONError(w http.ResponseWriter, r *http.Request, err error, debug bool) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	logServerError(r, statusCode, err)
	if writeErr := httpx.WriteJSONError(w, statusCode, PublicMessage(err, debug)); writeErr != nil {
		log.Printf("write json error: %v", writeErr)
	}
}

// WritePage writes a full error page for statusCode.
func WritePage(w http.ResponseWriter, r *http.Request, statusCode int, detail string) {
	if w == nil {
		return
	}
	if !ShouldRenderPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	page := templates.PageContext{
		Title: templates.ErrorPageTitle(statusCode),
		Lang:  i18n.ResolveTag(r).String(),
	}
	var buf bytes.Buffer
	if err := templates.Layout(page, templates.ErrorState(statusCode, detail)).Render(httpx.RequestContext(r), &buf); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

// WriteModuleError writes err as an error page, or as plain text for client
// errors that have no page of their own.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, debug bool) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	logServerError(r, statusCode, err)
	if ShouldRenderPage(statusCode) {
		detail := ""
		if debug && err != nil {
			detail = err.Error()
		}
		WritePage(w, r, statusCode, detail)
		return
	}
	http.Error(w, PublicMessage(err, debug), statusCode)
}

func logServerError(r *http.Request, statusCode int, err error) {
	if statusCode < http.StatusInternalServerError || err == nil {
		return
	}
	path, requestID := "-", "-"
	if r != nil {
		path = r.URL.Path
		if rid := strings.TrimSpace(r.Header.Get(httpx.RequestIDHeader)); rid != "" {
			requestID = rid
		}
	}
	log.Printf("request failed path=%s status=%d request_id=%s err=%v", path, statusCode, requestID, err)
}
