// Package dataset holds the read-only tables behind the dashboard.
//
// The three source files are loaded once, staged in an in-memory SQLite
// database to derive the world and per-country emissions series, and then
// materialized into plain slices. A Store never changes after Load returns,
// so it is safe for concurrent readers without locking.
package dataset

import (
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/louisbranch/co2explorer/internal/platform/indicators"
)

// WorldCountry is the aggregate label used by the emissions file for the
// whole-world rows.
const WorldCountry = "World"

// ErrUnknownColumn reports a metric lookup on a column the table does not
// carry.
var ErrUnknownColumn = errors.New("unknown column")

// CountryInfo is one row of the country metadata file.
type CountryInfo struct {
	Country string
	ISO3    string
	Region  string
}

// SnapshotRow is one country's indicator values for the snapshot year.
type SnapshotRow struct {
	Country string
	Region  string
	values  map[string]float64
}

// Value returns the indicator value and whether it was present.
func (r SnapshotRow) Value(key string) (float64, bool) {
	v, ok := r.values[key]
	return v, ok
}

// EmissionsRow is one raw row of the emissions time series. Missing cells
// are reported through the Valid flags.
type EmissionsRow struct {
	Country   string
	Year      sql.NullInt64
	TotalKT   sql.NullFloat64
	PerCapita sql.NullFloat64
}

// SeriesPoint is a complete emissions observation.
type SeriesPoint struct {
	Country   string
	Year      int
	TotalKT   float64
	PerCapita float64
}

// Metric returns the value stored under an emissions column name.
func (p SeriesPoint) Metric(column string) (float64, error) {
	switch column {
	case indicators.CO2Total:
		return p.TotalKT, nil
	case indicators.CO2PerCapita:
		return p.PerCapita, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
}

// CountryPoint is a SeriesPoint joined with its country metadata.
type CountryPoint struct {
	SeriesPoint
	ISO3   string
	Region string
}

// Store is the immutable Data Store.
type Store struct {
	countries     []CountryInfo
	snapshot      []SnapshotRow
	emissions     []EmissionsRow
	world         []SeriesPoint
	countrySeries []CountryPoint
	years         []int
}

// Countries returns a copy of the country metadata table.
func (s *Store) Countries() []CountryInfo { return slices.Clone(s.countries) }

// Snapshot returns a copy of the single-year indicator table.
func (s *Store) Snapshot() []SnapshotRow { return slices.Clone(s.snapshot) }

// Emissions returns a copy of the raw emissions series.
func (s *Store) Emissions() []EmissionsRow { return slices.Clone(s.emissions) }

// World returns a copy of WorldSeries.
func (s *Store) World() []SeriesPoint { return slices.Clone(s.world) }

// CountrySeries returns a copy of CountrySeries.
func (s *Store) CountrySeries() []CountryPoint { return slices.Clone(s.countrySeries) }

// SnapshotRows iterates the snapshot table without copying it.
func (s *Store) SnapshotRows() iter.Seq[SnapshotRow] {
	return slices.Values(s.snapshot)
}

// CountryPoints iterates CountrySeries without copying it.
func (s *Store) CountryPoints() iter.Seq[CountryPoint] {
	return slices.Values(s.countrySeries)
}

// Years returns the distinct CountrySeries years in ascending order.
func (s *Store) Years() []int { return slices.Clone(s.years) }

// HasYear reports whether CountrySeries carries any row for year.
func (s *Store) HasYear(year int) bool {
	_, found := slices.BinarySearch(s.years, year)
	return found
}

// LatestYear returns the most recent CountrySeries year, or 0 when empty.
func (s *Store) LatestYear() int {
	if len(s.years) == 0 {
		return 0
	}
	return s.years[len(s.years)-1]
}

// CountryYear returns the CountrySeries rows for year in file order.
func (s *Store) CountryYear(year int) []CountryPoint {
	var out []CountryPoint
	for _, p := range s.countrySeries {
		if p.Year == year {
			out = append(out, p)
		}
	}
	return out
}
