package view

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/co2explorer/internal/platform/indicators"
	"github.com/louisbranch/co2explorer/internal/services/explorer/dataset"
	"github.com/louisbranch/co2explorer/internal/services/explorer/figure"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newTestUpdaters(t *testing.T) (*Updaters, *dataset.Store) {
	t.Helper()
	store, err := dataset.Load(context.Background(), dataset.PathsIn("testdata", "country_info.csv", "data_2018.csv", "co2_1960_2018.csv"), nil)
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	u, err := NewUpdaters(store, indicators.Default())
	if err != nil {
		t.Fatalf("NewUpdaters: %v", err)
	}
	return u, store
}

func TestNewUpdatersRequiresDependencies(t *testing.T) {
	t.Parallel()

	if _, err := NewUpdaters(nil, indicators.Default()); err == nil {
		t.Fatal("expected error for nil store")
	}
	if _, err := NewUpdaters(&dataset.Store{}, nil); err == nil {
		t.Fatal("expected error for nil catalog")
	}
	partial, err := indicators.New([]indicators.Indicator{{Key: indicators.CO2Total, Label: "CO2"}})
	if err != nil {
		t.Fatalf("indicators.New: %v", err)
	}
	if _, err := NewUpdaters(&dataset.Store{}, partial); err == nil {
		t.Fatal("expected error for catalog without metrics")
	}
}

func TestLine(t *testing.T) {
	t.Parallel()

	rows := []dataset.SeriesPoint{
		{Country: "World", Year: 2017, TotalKT: 10, PerCapita: 1},
		{Country: "World", Year: 2018, TotalKT: 12, PerCapita: 1.5},
	}
	fig, err := Line(indicators.CO2PerCapita, "Per capita emissions", rows)
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	if diff := cmp.Diff([]float64{2017, 2018}, fig.Data[0].X); diff != "" {
		t.Fatalf("x mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 1.5}, fig.Data[0].Y); diff != "" {
		t.Fatalf("y mismatch (-want +got):\n%s", diff)
	}
	if fig.Layout.Title.Text != "Per capita emissions" {
		t.Fatalf("title = %q", fig.Layout.Title.Text)
	}
}

func TestLineUnknownColumn(t *testing.T) {
	t.Parallel()

	_, err := Line("GDP", "bad", []dataset.SeriesPoint{{Country: "World", Year: 2018}})
	if !errors.Is(err, dataset.ErrUnknownColumn) {
		t.Fatalf("error = %v, want ErrUnknownColumn", err)
	}
}

func TestWorldLines(t *testing.T) {
	t.Parallel()

	u, _ := newTestUpdaters(t)
	world := u.WorldLines()
	if world.Total.Layout.Title.Text != "Total emissions" {
		t.Fatalf("total title = %q", world.Total.Layout.Title.Text)
	}
	if world.PerCapita.Layout.Title.Text != "Per capita emissions" {
		t.Fatalf("per capita title = %q", world.PerCapita.Layout.Title.Text)
	}
	if diff := cmp.Diff([]float64{35800000, 36400000}, world.Total.Data[0].Y); diff != "" {
		t.Fatalf("total y mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateMapFrance(t *testing.T) {
	t.Parallel()

	u, _ := newTestUpdaters(t)
	fig, err := u.UpdateMap(indicators.CO2PerCapita, 2018, nil)
	if err != nil {
		t.Fatalf("UpdateMap: %v", err)
	}
	trace := fig.Data[0]
	idx := -1
	for i, loc := range trace.Locations {
		if loc == "FRA" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatalf("locations = %v, want FRA", trace.Locations)
	}
	if trace.Z[idx] != 4.5 {
		t.Fatalf("FRA value = %v, want 4.5", trace.Z[idx])
	}
	if trace.HoverText[idx] != "France" {
		t.Fatalf("FRA hover = %q, want France", trace.HoverText[idx])
	}
}

func TestUpdateMapCountrySet(t *testing.T) {
	t.Parallel()

	u, store := newTestUpdaters(t)
	for _, year := range store.Years() {
		for _, m := range Metrics {
			fig, err := u.UpdateMap(m.Key, year, nil)
			if err != nil {
				t.Fatalf("UpdateMap(%s, %d): %v", m.Key, year, err)
			}
			var want []string
			for _, p := range store.CountrySeries() {
				if p.Year == year {
					want = append(want, p.ISO3)
				}
			}
			if diff := cmp.Diff(want, fig.Data[0].Locations); diff != "" {
				t.Fatalf("UpdateMap(%s, %d) locations mismatch (-want +got):\n%s", m.Key, year, diff)
			}
		}
	}
}

func TestUpdateMapUnknownYearIsEmpty(t *testing.T) {
	t.Parallel()

	u, _ := newTestUpdaters(t)
	fig, err := u.UpdateMap(indicators.CO2Total, 1900, nil)
	if err != nil {
		t.Fatalf("UpdateMap: %v", err)
	}
	if len(fig.Data) != 1 || len(fig.Data[0].Locations) != 0 {
		t.Fatalf("data = %+v, want one empty trace", fig.Data)
	}
}

func TestUpdateMapUnknownMetric(t *testing.T) {
	t.Parallel()

	u, _ := newTestUpdaters(t)
	_, err := u.UpdateMap(indicators.Population, 2018, nil)
	if !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("error = %v, want ErrUnknownMetric", err)
	}
}

func TestUpdateMapFormatsHoverValues(t *testing.T) {
	t.Parallel()

	u, _ := newTestUpdaters(t)
	tests := []struct {
		tag  language.Tag
		want string
	}{
		{tag: language.English, want: "300,000"},
		{tag: language.German, want: "300.000"},
	}
	for _, tc := range tests {
		fig, err := u.UpdateMap(indicators.CO2Total, 2018, message.NewPrinter(tc.tag))
		if err != nil {
			t.Fatalf("UpdateMap: %v", err)
		}
		if got := fig.Data[0].Text[0]; got != tc.want {
			t.Fatalf("%s label = %q, want %q", tc.tag, got, tc.want)
		}
	}
}

func TestUpdateScatterLabels(t *testing.T) {
	t.Parallel()

	u, _ := newTestUpdaters(t)
	for _, ind := range indicators.Default().All() {
		fig, err := u.UpdateScatter(ind.Key)
		if err != nil {
			t.Fatalf("UpdateScatter(%s): %v", ind.Key, err)
		}
		if got := fig.Layout.XAxis.Title.Text; got != ind.Label {
			t.Fatalf("UpdateScatter(%s) x title = %q, want %q", ind.Key, got, ind.Label)
		}
		if got := fig.Layout.YAxis.Title.Text; got != "CO2 emissions (metric tons per capita)" {
			t.Fatalf("y title = %q", got)
		}
	}
}

func TestUpdateScatterGDPLabel(t *testing.T) {
	t.Parallel()

	u, _ := newTestUpdaters(t)
	fig, err := u.UpdateScatter(indicators.GDPPerCapita)
	if err != nil {
		t.Fatalf("UpdateScatter: %v", err)
	}
	want := "GDP per capita, PPP (constant 2017 international $)"
	if got := fig.Layout.XAxis.Title.Text; got != want {
		t.Fatalf("x title = %q, want %q", got, want)
	}
}

func TestUpdateScatterPoints(t *testing.T) {
	t.Parallel()

	u, _ := newTestUpdaters(t)
	fig, err := u.UpdateScatter(indicators.Renewables)
	if err != nil {
		t.Fatalf("UpdateScatter: %v", err)
	}
	var groups, names []string
	for _, tr := range fig.Data {
		groups = append(groups, tr.Name)
		names = append(names, tr.HoverText...)
	}
	wantGroups := []string{"Europe & Central Asia", "Latin America & Caribbean", "East Asia & Pacific"}
	if diff := cmp.Diff(wantGroups, groups); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"France", "Brazil", "Japan"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateScatterUnknownIndicator(t *testing.T) {
	t.Parallel()

	u, _ := newTestUpdaters(t)
	_, err := u.UpdateScatter("XX.UNKNOWN")
	if !errors.Is(err, indicators.ErrUnknownIndicator) {
		t.Fatalf("error = %v, want ErrUnknownIndicator", err)
	}
}

func TestUpdatersAreIdempotent(t *testing.T) {
	t.Parallel()

	u, _ := newTestUpdaters(t)
	encode := func(fig figure.Figure, err error) []byte {
		t.Helper()
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		raw, err := figure.Encode(fig)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		return raw
	}
	if a, b := encode(u.UpdateMap(indicators.CO2Total, 2018, nil)), encode(u.UpdateMap(indicators.CO2Total, 2018, nil)); !bytes.Equal(a, b) {
		t.Fatalf("UpdateMap not idempotent:\n%s\n%s", a, b)
	}
	if a, b := encode(u.UpdateScatter(indicators.UrbanShare)), encode(u.UpdateScatter(indicators.UrbanShare)); !bytes.Equal(a, b) {
		t.Fatalf("UpdateScatter not idempotent:\n%s\n%s", a, b)
	}
}

func TestControls(t *testing.T) {
	t.Parallel()

	u, _ := newTestUpdaters(t)
	c := u.Controls()
	if diff := cmp.Diff([]int{2017, 2018}, c.Years); diff != "" {
		t.Fatalf("years mismatch (-want +got):\n%s", diff)
	}
	if c.DefaultYear != 2018 {
		t.Fatalf("default year = %d, want 2018", c.DefaultYear)
	}
	if c.DefaultMetric != indicators.CO2Total {
		t.Fatalf("default metric = %q", c.DefaultMetric)
	}
	if c.DefaultIndicator != indicators.UrbanShare {
		t.Fatalf("default indicator = %q", c.DefaultIndicator)
	}
	if len(c.Indicators) != 9 {
		t.Fatalf("indicators = %d, want 9", len(c.Indicators))
	}
}
