// Package figure describes charts as Plotly figure objects.
//
// Builders are pure: the same input always yields the same Figure, and Encode
// renders a Figure to the same bytes every time.
package figure

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Colorway is the qualitative palette of the Bootstrap figure template.
var Colorway = []string{
	"#0d6efd",
	"#6610f2",
	"#6f42c1",
	"#d63384",
	"#dc3545",
	"#fd7e14",
	"#ffc107",
	"#198754",
	"#20c997",
	"#0dcaf0",
}

// Figure is a Plotly figure: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is the subset of Plotly trace attributes the dashboard emits.
type Trace struct {
	Type          string    `json:"type"`
	Name          string    `json:"name,omitempty"`
	Mode          string    `json:"mode,omitempty"`
	LegendGroup   string    `json:"legendgroup,omitempty"`
	ShowLegend    *bool     `json:"showlegend,omitempty"`
	X             []float64 `json:"x,omitempty"`
	Y             []float64 `json:"y,omitempty"`
	Z             []float64 `json:"z,omitempty"`
	Locations     []string  `json:"locations,omitempty"`
	LocationMode  string    `json:"locationmode,omitempty"`
	HoverText     []string  `json:"hovertext,omitempty"`
	Text          []string  `json:"text,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	ColorAxis     string    `json:"coloraxis,omitempty"`
	Line          *Line     `json:"line,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`
}

// Line styles a line trace.
type Line struct {
	Color string `json:"color,omitempty"`
}

// Marker styles scatter points.
type Marker struct {
	Color    string    `json:"color,omitempty"`
	Size     []float64 `json:"size,omitempty"`
	SizeMode string    `json:"sizemode,omitempty"`
	SizeRef  float64   `json:"sizeref,omitempty"`
	Symbol   string    `json:"symbol,omitempty"`
}

// Layout is the subset of Plotly layout attributes the dashboard emits.
type Layout struct {
	Title     *Title     `json:"title,omitempty"`
	XAxis     *Axis      `json:"xaxis,omitempty"`
	YAxis     *Axis      `json:"yaxis,omitempty"`
	Legend    *Legend    `json:"legend,omitempty"`
	Margin    *Margin    `json:"margin,omitempty"`
	ColorAxis *ColorAxis `json:"coloraxis,omitempty"`
	Geo       *Geo       `json:"geo,omitempty"`
	Colorway  []string   `json:"colorway,omitempty"`
}

// Title is a chart, axis, legend or colour bar title. An empty Text
// suppresses the title Plotly would otherwise derive.
type Title struct {
	Text string   `json:"text"`
	X    *float64 `json:"x,omitempty"`
}

// Axis configures a cartesian axis.
type Axis struct {
	Title *Title `json:"title,omitempty"`
}

// Legend configures the legend box.
type Legend struct {
	Title      *Title `json:"title,omitempty"`
	ItemSizing string `json:"itemsizing,omitempty"`
}

// Margin holds plot margins in pixels. Nil sides keep the Plotly default.
type Margin struct {
	L *int `json:"l,omitempty"`
	R *int `json:"r,omitempty"`
	B *int `json:"b,omitempty"`
	T *int `json:"t,omitempty"`
}

// ColorAxis is a shared continuous colour scale.
type ColorAxis struct {
	ColorScale string    `json:"colorscale"`
	ColorBar   *ColorBar `json:"colorbar,omitempty"`
}

// ColorBar configures the colour axis legend.
type ColorBar struct {
	Title *Title `json:"title,omitempty"`
}

// Geo configures the map projection frame.
type Geo struct {
	ShowFrame bool `json:"showframe"`
}

// Encode renders f as compact JSON.
func Encode(f Figure) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encode figure: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func pixels(n int) *int { return &n }

func ratio(f float64) *float64 { return &f }

func boolean(b bool) *bool { return &b }
