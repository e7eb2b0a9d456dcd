package dataset

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// missingTokens mirrors the cell values pandas treats as NaN by default, so
// the exported files keep the meaning they had for the pipeline that wrote
// them.
var missingTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

type table struct {
	name   string
	header []string
	index  map[string]int
	rows   [][]string
}

func readTableFile(ctx context.Context, path string) (*table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readTable(ctx, path, f)
}

func readTable(ctx context.Context, name string, r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: missing header row", name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", name, err)
	}
	t := &table{
		name:   name,
		header: make([]string, len(header)),
		index:  make(map[string]int, len(header)),
	}
	for i, col := range header {
		col = strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))
		t.header[i] = col
		if _, dup := t.index[col]; dup {
			return nil, fmt.Errorf("%s: duplicate column %q", name, col)
		}
		t.index[col] = i
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

func (t *table) require(columns ...string) error {
	var missing []string
	for _, col := range columns {
		if _, ok := t.index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing columns %s", t.name, strings.Join(missing, ", "))
	}
	return nil
}

func (t *table) has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// cell returns the trimmed value and false when the cell is missing.
func (t *table) cell(row []string, column string) (string, bool) {
	idx, ok := t.index[column]
	if !ok || idx >= len(row) {
		return "", false
	}
	value := strings.TrimSpace(row[idx])
	if _, missing := missingTokens[value]; missing {
		return "", false
	}
	return value, true
}

func (t *table) text(row []string, column string) sql.NullString {
	value, ok := t.cell(row, column)
	return sql.NullString{String: value, Valid: ok}
}

func (t *table) float(line int, row []string, column string) (sql.NullFloat64, error) {
	value, ok := t.cell(row, column)
	if !ok {
		return sql.NullFloat64{}, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return sql.NullFloat64{}, fmt.Errorf("%s: line %d: column %s: %w", t.name, line, column, err)
	}
	if math.IsNaN(f) {
		return sql.NullFloat64{}, nil
	}
	return sql.NullFloat64{Float64: f, Valid: true}, nil
}

// integer accepts whole numbers written either as ints or as floats with a
// zero fraction ("2018.0"), which is how a year column with gaps is exported.
func (t *table) integer(line int, row []string, column string) (sql.NullInt64, error) {
	value, ok := t.cell(row, column)
	if !ok {
		return sql.NullInt64{}, nil
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return sql.NullInt64{Int64: n, Valid: true}, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return sql.NullInt64{}, fmt.Errorf("%s: line %d: column %s: %q is not a whole number", t.name, line, column, value)
	}
	return sql.NullInt64{Int64: int64(f), Valid: true}, nil
}
