package figure

import "fmt"

// LineInput is a single x/y series.
type LineInput struct {
	Title string
	XName string
	YName string
	X     []float64
	Y     []float64
}

// Lines builds a line chart with a centred title and no axis titles.
func Lines(in LineInput) (Figure, error) {
	if len(in.X) != len(in.Y) {
		return Figure{}, fmt.Errorf("line %q: %d x values, %d y values", in.Title, len(in.X), len(in.Y))
	}
	trace := Trace{
		Type:          "scatter",
		Mode:          "lines",
		ShowLegend:    boolean(false),
		X:             in.X,
		Y:             in.Y,
		HoverTemplate: fmt.Sprintf("%s=%%{x}<br>%s=%%{y}<extra></extra>", in.XName, in.YName),
		Line:          &Line{Color: Colorway[0]},
	}
	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			Title:    &Title{Text: in.Title, X: ratio(0.5)},
			Margin:   &Margin{L: pixels(0), R: pixels(0), B: pixels(0)},
			Colorway: Colorway,
		},
	}, nil
}

