// Package view turns control values into figures.
//
// Updaters read only the immutable Data Store and the indicator catalog they
// were built with, so identical arguments always produce identical figures
// and concurrent calls need no locking.
package view

import (
	"errors"
	"fmt"
	"slices"

	"github.com/louisbranch/co2explorer/internal/platform/indicators"
	"github.com/louisbranch/co2explorer/internal/services/explorer/dataset"
	"github.com/louisbranch/co2explorer/internal/services/explorer/figure"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrUnknownMetric reports a map metric outside the Metrics set.
var ErrUnknownMetric = errors.New("unknown metric")

// DefaultIndicator is the scatter indicator selected on first load.
const DefaultIndicator = indicators.UrbanShare

// Metric is one choice of the map metric selector.
type Metric struct {
	Key   string
	Label string
}

// Metrics lists the map metrics in selector order. The first is the default.
var Metrics = []Metric{
	{Key: indicators.CO2Total, Label: "Total"},
	{Key: indicators.CO2PerCapita, Label: "Per capita"},
}

// ValidMetric reports whether key names a map metric.
func ValidMetric(key string) bool {
	return slices.ContainsFunc(Metrics, func(m Metric) bool { return m.Key == key })
}

// Line builds a line chart of metric over year from rows.
func Line(metric, title string, rows []dataset.SeriesPoint) (figure.Figure, error) {
	x := make([]float64, 0, len(rows))
	y := make([]float64, 0, len(rows))
	for _, row := range rows {
		value, err := row.Metric(metric)
		if err != nil {
			return figure.Figure{}, fmt.Errorf("line %q: %w", title, err)
		}
		x = append(x, float64(row.Year))
		y = append(y, value)
	}
	return figure.Lines(figure.LineInput{
		Title: title,
		XName: "year",
		YName: metric,
		X:     x,
		Y:     y,
	})
}

// WorldLines are the two world emissions charts shown in the Total tab.
type WorldLines struct {
	Total     figure.Figure
	PerCapita figure.Figure
}

// Controls describes the selector options and their defaults.
type Controls struct {
	Years            []int
	DefaultYear      int
	Metrics          []Metric
	DefaultMetric    string
	Indicators       []indicators.Indicator
	DefaultIndicator string
}

// Updaters answers view updates from a loaded Data Store.
type Updaters struct {
	store   *dataset.Store
	catalog *indicators.Catalog
	world   WorldLines
}

// NewUpdaters binds the updaters to store and catalog and precomputes the
// world line charts.
func NewUpdaters(store *dataset.Store, catalog *indicators.Catalog) (*Updaters, error) {
	if store == nil {
		return nil, errors.New("data store is required")
	}
	if catalog == nil {
		return nil, errors.New("indicator catalog is required")
	}
	for _, m := range Metrics {
		if !catalog.Has(m.Key) {
			return nil, fmt.Errorf("catalog is missing metric %s", m.Key)
		}
	}
	if !catalog.Has(DefaultIndicator) {
		return nil, fmt.Errorf("catalog is missing default indicator %s", DefaultIndicator)
	}

	u := &Updaters{store: store, catalog: catalog}
	world := store.World()
	var err error
	if u.world.Total, err = Line(indicators.CO2Total, "Total emissions", world); err != nil {
		return nil, err
	}
	if u.world.PerCapita, err = Line(indicators.CO2PerCapita, "Per capita emissions", world); err != nil {
		return nil, err
	}
	return u, nil
}

// WorldLines returns the precomputed world emissions charts.
func (u *Updaters) WorldLines() WorldLines {
	return u.world
}

// Controls returns the selector options.
func (u *Updaters) Controls() Controls {
	return Controls{
		Years:            u.store.Years(),
		DefaultYear:      u.store.LatestYear(),
		Metrics:          slices.Clone(Metrics),
		DefaultMetric:    Metrics[0].Key,
		Indicators:       u.catalog.All(),
		DefaultIndicator: DefaultIndicator,
	}
}

// UpdateMap builds the country map of metric for year. A year without rows
// yields an empty map. Hover values are formatted with printer, or in English
// when printer is nil.
func (u *Updaters) UpdateMap(metric string, year int, printer *message.Printer) (figure.Figure, error) {
	if !ValidMetric(metric) {
		return figure.Figure{}, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
	if printer == nil {
		printer = message.NewPrinter(language.English)
	}

	rows := u.store.CountryYear(year)
	in := figure.ChoroplethInput{
		Locations:  make([]string, 0, len(rows)),
		Names:      make([]string, 0, len(rows)),
		Values:     make([]float64, 0, len(rows)),
		Labels:     make([]string, 0, len(rows)),
		ValueName:  metric,
		ColorScale: figure.DefaultColorScale,
	}
	for _, row := range rows {
		value, err := row.Metric(metric)
		if err != nil {
			return figure.Figure{}, err
		}
		in.Locations = append(in.Locations, row.ISO3)
		in.Names = append(in.Names, row.Country)
		in.Values = append(in.Values, value)
		in.Labels = append(in.Labels, printer.Sprint(number.Decimal(value, number.MaxFractionDigits(2))))
	}
	return figure.Choropleth(in)
}

// UpdateScatter plots indicator against per capita emissions for the
// snapshot year. Countries missing any plotted value are left out.
func (u *Updaters) UpdateScatter(indicator string) (figure.Figure, error) {
	label, err := u.catalog.Label(indicator)
	if err != nil {
		return figure.Figure{}, err
	}
	yLabel, err := u.catalog.Label(indicators.CO2PerCapita)
	if err != nil {
		return figure.Figure{}, err
	}

	var points []figure.ScatterPoint
	for row := range u.store.SnapshotRows() {
		x, okX := row.Value(indicator)
		y, okY := row.Value(indicators.CO2PerCapita)
		size, okSize := row.Value(indicators.Population)
		if !okX || !okY || !okSize || row.Region == "" {
			continue
		}
		points = append(points, figure.ScatterPoint{
			Name:  row.Country,
			Group: row.Region,
			X:     x,
			Y:     y,
			Size:  size,
		})
	}
	return figure.Scatter(figure.ScatterInput{
		Points: points,
		XName:  indicator,
		YName:  indicators.CO2PerCapita,
		XTitle: label,
		YTitle: yLabel,
	})
}
