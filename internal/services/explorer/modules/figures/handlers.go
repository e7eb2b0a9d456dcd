package figures

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/co2explorer/internal/platform/indicators"
	"github.com/louisbranch/co2explorer/internal/services/explorer/figure"
	apperrors "github.com/louisbranch/co2explorer/internal/services/explorer/platform/errors"
	"github.com/louisbranch/co2explorer/internal/services/explorer/platform/httpx"
	"github.com/louisbranch/co2explorer/internal/services/explorer/platform/i18n"
	"github.com/louisbranch/co2explorer/internal/services/explorer/platform/weberror"
	"github.com/louisbranch/co2explorer/internal/services/explorer/routepath"
	"github.com/louisbranch/co2explorer/internal/services/explorer/view"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"
)

// Source answers view updates.
type Source interface {
	Controls() view.Controls
	UpdateMap(metric string, year int, printer *message.Printer) (figure.Figure, error)
	UpdateScatter(indicator string) (figure.Figure, error)
}

type handlers struct {
	source Source
	tracer trace.Tracer
	debug  bool
}

func newHandlers(source Source, tracer trace.Tracer, debug bool) handlers {
	return handlers{source: source, tracer: tracer, debug: debug}
}

func (h handlers) handleMap(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(httpx.RequestContext(r), "figures.update_map")
	defer span.End()

	controls := h.source.Controls()
	query := r.URL.Query()
	metric := strings.TrimSpace(query.Get(routepath.ParamMetric))
	if metric == "" {
		metric = controls.DefaultMetric
	}
	year := controls.DefaultYear
	if raw := strings.TrimSpace(query.Get(routepath.ParamYear)); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(w, r.WithContext(ctx), span, apperrors.Wrap(apperrors.KindInvalidInput, "year must be an integer", err))
			return
		}
		year = parsed
	}
	span.SetAttributes(
		attribute.String("explorer.metric", metric),
		attribute.Int("explorer.year", year),
	)

	fig, err := h.source.UpdateMap(metric, year, i18n.Printer(r))
	if err != nil {
		if errors.Is(err, view.ErrUnknownMetric) {
			err = apperrors.Wrap(apperrors.KindInvalidInput, "update map", err)
		}
		h.fail(w, r.WithContext(ctx), span, err)
		return
	}
	h.writeFigure(w, r.WithContext(ctx), span, fig)
}

func (h handlers) handleScatter(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(httpx.RequestContext(r), "figures.update_scatter")
	defer span.End()

	indicator := strings.TrimSpace(r.URL.Query().Get(routepath.ParamIndicator))
	if indicator == "" {
		indicator = h.source.Controls().DefaultIndicator
	}
	span.SetAttributes(attribute.String("explorer.indicator", indicator))

	fig, err := h.source.UpdateScatter(indicator)
	if err != nil {
		if errors.Is(err, indicators.ErrUnknownIndicator) {
			err = apperrors.Wrap(apperrors.KindInvalidInput, "update scatter", err)
		}
		h.fail(w, r.WithContext(ctx), span, err)
		return
	}
	h.writeFigure(w, r.WithContext(ctx), span, fig)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteJSONError(w, r, apperrors.E(apperrors.KindNotFound, "unknown figure"), h.debug)
}

func (h handlers) writeFigure(w http.ResponseWriter, r *http.Request, span trace.Span, fig figure.Figure) {
	payload, err := figure.Encode(fig)
	if err != nil {
		h.fail(w, r, span, err)
		return
	}
	span.SetAttributes(attribute.Int("explorer.traces", len(fig.Data)))
	if err := httpx.WriteJSONBytes(w, http.StatusOK, payload); err != nil {
		span.RecordError(err)
	}
}

func (h handlers) fail(w http.ResponseWriter, r *http.Request, span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	weberror.WriteJSONError(w, r, err, h.debug)
}
