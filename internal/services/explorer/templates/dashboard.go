package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/co2explorer/internal/services/explorer/routepath"
)

// Element ids shared with explorer.js.
const (
	TotalFigureID     = "fig-total"
	PerCapitaFigureID = "fig-per-capita"
	MapFigureID       = "my_map"
	ScatterFigureID   = "my_scatter"
	YearSelectID      = "my_year"
	MetricInputName   = "my_metric"
	IndicatorSelectID = "my_ind"
)

// WDIURL is the data source credited in the page header.
const WDIURL = "https://datatopics.worldbank.org/world-development-indicators/"

// Option is one selector choice.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// DashboardView is everything the dashboard page needs.
type DashboardView struct {
	SnapshotYear    int
	Years           []Option
	Metrics         []Option
	Indicators      []Option
	TotalFigure     any
	PerCapitaFigure any
}

// Dashboard renders the two dashboard cards.
func Dashboard(v DashboardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1>CO2 emissions around the world</h1><p>Data on emissions and potential drivers are extracted from the <a`)
		h.attr("href", WDIURL)
		h.raw(`>World Development Indicators</a> database.</p>`)

		emissionsCard(h, v)
		h.raw("<br>")
		driversCard(h, v)
		h.raw("<br>")

		h.component(ctx, templ.JSONScript(TotalFigureID+"-data", v.TotalFigure))
		h.component(ctx, templ.JSONScript(PerCapitaFigureID+"-data", v.PerCapitaFigure))
		return h.err
	})
}

func emissionsCard(h *htmlWriter, v DashboardView) {
	h.raw(`<div class="card"><div class="card-body">`)
	h.raw(`<h4 class="card-title">CO2 emissions over time</h4>`)
	h.raw(`<p class="card-text">Click on the tabs to explore total or country-level CO2 emissions over time:</p>`)
	h.raw(`<ul class="nav nav-tabs" role="tablist">`)
	h.raw(`<li class="nav-item" role="presentation"><button class="nav-link active" data-bs-toggle="tab" data-bs-target="#tab-total" type="button" role="tab">Total</button></li>`)
	h.raw(`<li class="nav-item" role="presentation"><button class="nav-link" data-bs-toggle="tab" data-bs-target="#tab-country" type="button" role="tab">By country</button></li>`)
	h.raw(`</ul><div class="tab-content">`)

	h.raw(`<div class="tab-pane fade show active" id="tab-total" role="tabpanel"><div class="row">`)
	h.raw(`<div class="col-6"><div class="figure"`)
	h.attr("id", TotalFigureID)
	h.raw(`></div></div><div class="col-6"><div class="figure"`)
	h.attr("id", PerCapitaFigureID)
	h.raw(`></div></div></div></div>`)

	h.raw(`<div class="tab-pane fade" id="tab-country" role="tabpanel"><div class="row">`)
	h.raw(`<div class="col-3"><label`)
	h.attr("for", YearSelectID)
	h.raw(`>Select year:</label>`)
	selectControl(h, YearSelectID, v.Years)
	h.raw(`</div><div class="col-3"><label>Select metric:</label>`)
	for i, opt := range v.Metrics {
		id := MetricInputName + "-" + itoa(i)
		h.raw(`<div class="form-check"><input class="form-check-input" type="radio"`)
		h.attr("name", MetricInputName)
		h.attr("id", id)
		h.attr("value", opt.Value)
		if opt.Selected {
			h.raw(" checked")
		}
		h.raw(`><label class="form-check-label"`)
		h.attr("for", id)
		h.raw(">")
		h.text(opt.Label)
		h.raw("</label></div>")
	}
	h.raw(`</div></div><div class="figure"`)
	h.attr("id", MapFigureID)
	h.attr("data-src", routepath.FigureMap)
	h.raw(`></div></div>`)

	h.raw(`</div></div></div>`)
}

func driversCard(h *htmlWriter, v DashboardView) {
	h.raw(`<div class="card"><div class="card-body">`)
	h.raw(`<h4 class="card-title">Drivers of CO2 emissions</h4>`)
	h.raw(`<p class="card-text">Explore potential drivers of CO2 emissions in `)
	h.text(itoa(v.SnapshotYear))
	h.raw(` by selecting an indicator from the menu:</p>`)
	h.raw(`<div class="row"><div class="col-6">`)
	selectControl(h, IndicatorSelectID, v.Indicators)
	h.raw(`</div></div><div class="figure"`)
	h.attr("id", ScatterFigureID)
	h.attr("data-src", routepath.FigureScatter)
	h.raw(`></div></div></div>`)
}

func selectControl(h *htmlWriter, id string, options []Option) {
	h.raw(`<select class="form-select"`)
	h.attr("id", id)
	h.raw(">")
	for _, opt := range options {
		h.raw("<option")
		h.attr("value", opt.Value)
		if opt.Selected {
			h.raw(" selected")
		}
		h.raw(">")
		h.text(opt.Label)
		h.raw("</option>")
	}
	h.raw("</select>")
}
