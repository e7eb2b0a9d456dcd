package dataset

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/co2explorer/internal/platform/indicators"
	"golang.org/x/sync/errgroup"
)

// Column names of the source files.
const (
	colCountry = "country"
	colISO3    = "iso3c"
	colRegion  = "region"
	colYear    = "year"
)

// Paths locates the three source files.
type Paths struct {
	CountryInfo string
	Snapshot    string
	Emissions   string
}

// PathsIn resolves file names relative to dir. Absolute names are kept.
func PathsIn(dir, countryInfo, snapshot, emissions string) Paths {
	resolve := func(name string) string {
		name = strings.TrimSpace(name)
		if name == "" || filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(dir, name)
	}
	return Paths{
		CountryInfo: resolve(countryInfo),
		Snapshot:    resolve(snapshot),
		Emissions:   resolve(emissions),
	}
}

func (p Paths) validate() error {
	switch {
	case strings.TrimSpace(p.CountryInfo) == "":
		return fmt.Errorf("country info path is required")
	case strings.TrimSpace(p.Snapshot) == "":
		return fmt.Errorf("snapshot path is required")
	case strings.TrimSpace(p.Emissions) == "":
		return fmt.Errorf("emissions path is required")
	}
	return nil
}

// Load reads the source files and derives every table of the Store.
//
// A nil catalog uses indicators.Default to decide which snapshot columns are
// indicator values.
func Load(ctx context.Context, paths Paths, catalog *indicators.Catalog) (*Store, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context is required")
	}
	if err := paths.validate(); err != nil {
		return nil, err
	}
	if catalog == nil {
		catalog = indicators.Default()
	}
	started := time.Now()

	var info, snapshot, emissions *table
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := readTableFile(gctx, paths.CountryInfo)
		info = t
		return err
	})
	g.Go(func() error {
		t, err := readTableFile(gctx, paths.Snapshot)
		snapshot = t
		return err
	})
	g.Go(func() error {
		t, err := readTableFile(gctx, paths.Emissions)
		emissions = t
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("read source files: %w", err)
	}

	store, err := build(ctx, info, snapshot, emissions, catalog)
	if err != nil {
		return nil, err
	}
	log.Printf(
		"dataset loaded countries=%d snapshot=%d emissions=%d world=%d country_series=%d years=%d duration=%s",
		len(store.countries),
		len(store.snapshot),
		len(store.emissions),
		len(store.world),
		len(store.countrySeries),
		len(store.years),
		time.Since(started).Round(time.Millisecond),
	)
	return store, nil
}

func build(ctx context.Context, info, snapshot, emissions *table, catalog *indicators.Catalog) (*Store, error) {
	if err := info.require(colCountry, colISO3, colRegion); err != nil {
		return nil, err
	}
	if err := snapshot.require(colCountry, colRegion); err != nil {
		return nil, err
	}
	if err := emissions.require(colCountry, colYear, indicators.CO2Total, indicators.CO2PerCapita); err != nil {
		return nil, err
	}

	raw, err := parseRaw(info, snapshot, emissions, catalog)
	if err != nil {
		return nil, err
	}
	stage, err := openStage(ctx)
	if err != nil {
		return nil, err
	}
	defer stage.close()

	if err := stage.insert(ctx, raw); err != nil {
		return nil, err
	}
	store := &Store{
		countries: raw.countries,
		snapshot:  raw.snapshotRows(),
		emissions: raw.emissions,
	}
	if store.world, err = stage.worldSeries(ctx); err != nil {
		return nil, err
	}
	if store.countrySeries, err = stage.countrySeries(ctx); err != nil {
		return nil, err
	}
	if store.years, err = stage.years(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
