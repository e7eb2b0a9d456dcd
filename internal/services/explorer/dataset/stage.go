package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/louisbranch/co2explorer/internal/platform/storage/sqliteschema"
	"github.com/louisbranch/co2explorer/internal/services/explorer/dataset/schema"
	_ "modernc.org/sqlite"
)

// stage is the scratch SQLite database used to join and filter the raw
// tables. It is closed as soon as the Store is materialized.
type stage struct {
	sqlDB *sql.DB
}

func openStage(ctx context.Context) (*stage, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open staging db: %w", err)
	}
	// Each connection to :memory: is its own database.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping staging db: %w", err)
	}
	if err := sqliteschema.Apply(ctx, sqlDB, schema.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply staging schema: %w", err)
	}
	return &stage{sqlDB: sqlDB}, nil
}

func (s *stage) close() {
	if s == nil || s.sqlDB == nil {
		return
	}
	if err := s.sqlDB.Close(); err != nil {
		log.Printf("close staging db: %v", err)
	}
}

func (s *stage) insert(ctx context.Context, raw rawTables) (err error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin staging insert: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	infoStmt, err := tx.PrepareContext(ctx, `INSERT INTO country_info (row_id, country, iso3c, region) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare country info insert: %w", err)
	}
	defer infoStmt.Close()
	for i, row := range raw.countries {
		if _, err := infoStmt.ExecContext(ctx, i, nullText(row.Country), nullText(row.ISO3), nullText(row.Region)); err != nil {
			return fmt.Errorf("stage country info row %d: %w", i, err)
		}
	}

	snapshotStmt, err := tx.PrepareContext(ctx, `INSERT INTO snapshot (row_id, country, region) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare snapshot insert: %w", err)
	}
	defer snapshotStmt.Close()
	valueStmt, err := tx.PrepareContext(ctx, `INSERT INTO snapshot_values (row_id, indicator, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare snapshot value insert: %w", err)
	}
	defer valueStmt.Close()
	for i, row := range raw.snapshot {
		if _, err := snapshotStmt.ExecContext(ctx, i, nullText(row.Country), nullText(row.Region)); err != nil {
			return fmt.Errorf("stage snapshot row %d: %w", i, err)
		}
		for _, key := range raw.indicators {
			value, ok := row.Value(key)
			if !ok {
				continue
			}
			if _, err := valueStmt.ExecContext(ctx, i, key, value); err != nil {
				return fmt.Errorf("stage snapshot value %d/%s: %w", i, key, err)
			}
		}
	}

	emissionsStmt, err := tx.PrepareContext(ctx, `INSERT INTO emissions (row_id, country, year, co2_kt, co2_pc) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare emissions insert: %w", err)
	}
	defer emissionsStmt.Close()
	for i, row := range raw.emissions {
		if _, err := emissionsStmt.ExecContext(ctx, i, nullText(row.Country), row.Year, row.TotalKT, row.PerCapita); err != nil {
			return fmt.Errorf("stage emissions row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit staging insert: %w", err)
	}
	return nil
}

func (s *stage) worldSeries(ctx context.Context) ([]SeriesPoint, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT country, year, co2_kt, co2_pc
		FROM world_series
		ORDER BY row_id`)
	if err != nil {
		return nil, fmt.Errorf("query world series: %w", err)
	}
	defer rows.Close()

	points := []SeriesPoint{}
	for rows.Next() {
		var p SeriesPoint
		if err := rows.Scan(&p.Country, &p.Year, &p.TotalKT, &p.PerCapita); err != nil {
			return nil, fmt.Errorf("scan world series: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate world series: %w", err)
	}
	return points, nil
}

func (s *stage) countrySeries(ctx context.Context) ([]CountryPoint, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT country, year, co2_kt, co2_pc, iso3c, region
		FROM country_series
		ORDER BY row_id, info_row_id`)
	if err != nil {
		return nil, fmt.Errorf("query country series: %w", err)
	}
	defer rows.Close()

	points := []CountryPoint{}
	for rows.Next() {
		var p CountryPoint
		if err := rows.Scan(&p.Country, &p.Year, &p.TotalKT, &p.PerCapita, &p.ISO3, &p.Region); err != nil {
			return nil, fmt.Errorf("scan country series: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate country series: %w", err)
	}
	return points, nil
}

func (s *stage) years(ctx context.Context) ([]int, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT DISTINCT year FROM country_series ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("query years: %w", err)
	}
	defer rows.Close()

	years := []int{}
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate years: %w", err)
	}
	return years, nil
}

func nullText(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
