// Package routepath centralizes explorer route constants.
package routepath

const (
	Root          = "/"
	StaticPrefix  = "/static/"
	FiguresPrefix = "/api/figures/"
	FigureMap     = FiguresPrefix + "map"
	FigureScatter = FiguresPrefix + "scatter"
	Healthz       = "/healthz"
)

// Query parameters accepted by the figure endpoints.
const (
	ParamMetric    = "metric"
	ParamYear      = "year"
	ParamIndicator = "indicator"
	ParamLang      = "lang"
)

// StaticFile returns the URL of an embedded static asset.
func StaticFile(name string) string {
	return StaticPrefix + name
}
