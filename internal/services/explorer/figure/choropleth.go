package figure

import "fmt"

// DefaultColorScale is the sequential scale used for choropleth maps.
const DefaultColorScale = "Blues"

// ChoroplethInput holds one value per ISO3 location.
type ChoroplethInput struct {
	Locations  []string
	Names      []string
	Values     []float64
	Labels     []string
	ValueName  string
	ColorScale string
}

// Choropleth builds a world map coloured by Values. Hover shows the name and
// the formatted value; the location code stays hidden. Empty input yields an
// empty map.
func Choropleth(in ChoroplethInput) (Figure, error) {
	n := len(in.Locations)
	if len(in.Names) != n || len(in.Values) != n {
		return Figure{}, fmt.Errorf("choropleth: %d locations, %d names, %d values", n, len(in.Names), len(in.Values))
	}
	if in.Labels != nil && len(in.Labels) != n {
		return Figure{}, fmt.Errorf("choropleth: %d locations, %d labels", n, len(in.Labels))
	}
	scale := in.ColorScale
	if scale == "" {
		scale = DefaultColorScale
	}

	value := "%{z}"
	if in.Labels != nil {
		value = "%{text}"
	}
	trace := Trace{
		Type:          "choropleth",
		Locations:     in.Locations,
		LocationMode:  "ISO-3",
		Z:             in.Values,
		HoverText:     in.Names,
		Text:          in.Labels,
		HoverTemplate: fmt.Sprintf("<b>%%{hovertext}</b><br><br>%s=%s<extra></extra>", in.ValueName, value),
		ColorAxis:     "coloraxis",
	}
	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			ColorAxis: &ColorAxis{
				ColorScale: scale,
				ColorBar:   &ColorBar{Title: &Title{}},
			},
			Geo:    &Geo{ShowFrame: false},
			Margin: &Margin{L: pixels(0), R: pixels(0), B: pixels(0), T: pixels(0)},
		},
	}, nil
}
