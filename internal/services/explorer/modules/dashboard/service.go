package dashboard

import (
	"fmt"
	"strconv"

	"github.com/louisbranch/co2explorer/internal/services/explorer/templates"
	"github.com/louisbranch/co2explorer/internal/services/explorer/view"
)

// PageSource supplies the selector options and the precomputed world charts.
type PageSource interface {
	Controls() view.Controls
	WorldLines() view.WorldLines
}

type service struct {
	page templates.DashboardView
}

func newService(source PageSource, snapshotYear int) (service, error) {
	controls := source.Controls()
	world := source.WorldLines()
	if len(world.Total.Data) == 0 || len(world.PerCapita.Data) == 0 {
		return service{}, fmt.Errorf("world line charts are empty")
	}

	page := templates.DashboardView{
		SnapshotYear:    snapshotYear,
		TotalFigure:     world.Total,
		PerCapitaFigure: world.PerCapita,
	}
	for _, year := range controls.Years {
		page.Years = append(page.Years, templates.Option{
			Value:    strconv.Itoa(year),
			Label:    strconv.Itoa(year),
			Selected: year == controls.DefaultYear,
		})
	}
	for _, m := range controls.Metrics {
		page.Metrics = append(page.Metrics, templates.Option{
			Value:    m.Key,
			Label:    m.Label,
			Selected: m.Key == controls.DefaultMetric,
		})
	}
	for _, ind := range controls.Indicators {
		page.Indicators = append(page.Indicators, templates.Option{
			Value:    ind.Key,
			Label:    ind.Label,
			Selected: ind.Key == controls.DefaultIndicator,
		})
	}
	return service{page: page}, nil
}

func (s service) dashboard() templates.DashboardView {
	return s.page
}
