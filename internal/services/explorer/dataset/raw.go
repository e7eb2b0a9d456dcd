package dataset

import (
	"github.com/louisbranch/co2explorer/internal/platform/indicators"
)

type rawTables struct {
	countries  []CountryInfo
	snapshot   []SnapshotRow
	indicators []string
	emissions  []EmissionsRow
}

func (r rawTables) snapshotRows() []SnapshotRow {
	return r.snapshot
}

// parseRaw converts the CSV cells into typed rows. Missing text cells become
// empty strings and are stored as NULL in the staging database.
func parseRaw(info, snapshot, emissions *table, catalog *indicators.Catalog) (rawTables, error) {
	raw := rawTables{
		countries: make([]CountryInfo, 0, len(info.rows)),
		snapshot:  make([]SnapshotRow, 0, len(snapshot.rows)),
		emissions: make([]EmissionsRow, 0, len(emissions.rows)),
	}

	for _, row := range info.rows {
		raw.countries = append(raw.countries, CountryInfo{
			Country: info.text(row, colCountry).String,
			ISO3:    info.text(row, colISO3).String,
			Region:  info.text(row, colRegion).String,
		})
	}

	for _, key := range catalog.Keys() {
		if snapshot.has(key) {
			raw.indicators = append(raw.indicators, key)
		}
	}
	for i, row := range snapshot.rows {
		entry := SnapshotRow{
			Country: snapshot.text(row, colCountry).String,
			Region:  snapshot.text(row, colRegion).String,
			values:  make(map[string]float64, len(raw.indicators)),
		}
		for _, key := range raw.indicators {
			value, err := snapshot.float(i+2, row, key)
			if err != nil {
				return rawTables{}, err
			}
			if value.Valid {
				entry.values[key] = value.Float64
			}
		}
		raw.snapshot = append(raw.snapshot, entry)
	}

	for i, row := range emissions.rows {
		line := i + 2
		year, err := emissions.integer(line, row, colYear)
		if err != nil {
			return rawTables{}, err
		}
		total, err := emissions.float(line, row, indicators.CO2Total)
		if err != nil {
			return rawTables{}, err
		}
		perCapita, err := emissions.float(line, row, indicators.CO2PerCapita)
		if err != nil {
			return rawTables{}, err
		}
		raw.emissions = append(raw.emissions, EmissionsRow{
			Country:   emissions.text(row, colCountry).String,
			Year:      year,
			TotalKT:   total,
			PerCapita: perCapita,
		})
	}
	return raw, nil
}
