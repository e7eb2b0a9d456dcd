package figure

import (
	"fmt"
	"math"
)

// MaxMarkerSize is the diameter in pixels of the largest scatter marker.
const MaxMarkerSize = 20

// ScatterPoint is one marker. Group selects the trace and colour.
type ScatterPoint struct {
	Name  string
	Group string
	X     float64
	Y     float64
	Size  float64
}

// ScatterInput describes a bubble chart.
type ScatterInput struct {
	Points []ScatterPoint
	XName  string
	YName  string
	XTitle string
	YTitle string
}

// Scatter builds a bubble chart with one trace per group in order of first
// appearance. Marker area is proportional to Size across all groups.
func Scatter(in ScatterInput) (Figure, error) {
	maxSize := 0.0
	for _, p := range in.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Size) {
			return Figure{}, fmt.Errorf("scatter: point %q has a missing value", p.Name)
		}
		if p.Size < 0 {
			return Figure{}, fmt.Errorf("scatter: point %q has negative size %v", p.Name, p.Size)
		}
		maxSize = math.Max(maxSize, p.Size)
	}
	sizeRef := 1.0
	if maxSize > 0 {
		sizeRef = 2 * maxSize / (MaxMarkerSize * MaxMarkerSize)
	}

	hover := fmt.Sprintf("<b>%%{hovertext}</b><br><br>%s=%%{x}<br>%s=%%{y}<extra></extra>", in.XName, in.YName)
	traces := []Trace{}
	index := map[string]int{}
	for _, p := range in.Points {
		i, ok := index[p.Group]
		if !ok {
			i = len(traces)
			index[p.Group] = i
			traces = append(traces, Trace{
				Type:          "scatter",
				Name:          p.Group,
				Mode:          "markers",
				LegendGroup:   p.Group,
				ShowLegend:    boolean(true),
				HoverTemplate: hover,
				Marker: &Marker{
					Color:    Colorway[i%len(Colorway)],
					SizeMode: "area",
					SizeRef:  sizeRef,
					Symbol:   "circle",
				},
			})
		}
		t := &traces[i]
		t.X = append(t.X, p.X)
		t.Y = append(t.Y, p.Y)
		t.HoverText = append(t.HoverText, p.Name)
		t.Marker.Size = append(t.Marker.Size, p.Size)
	}

	return Figure{
		Data: traces,
		Layout: Layout{
			XAxis:    &Axis{Title: &Title{Text: in.XTitle}},
			YAxis:    &Axis{Title: &Title{Text: in.YTitle}},
			Legend:   &Legend{Title: &Title{}, ItemSizing: "constant"},
			Colorway: Colorway,
		},
	}, nil
}
