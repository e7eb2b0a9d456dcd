// Package sqliteschema applies embedded SQL schema files to a SQLite handle.
//
// The explorer only uses SQLite as a scratch database that lives for the
// duration of startup, so there is no applied-migration bookkeeping: every
// file runs once, in name order, inside a single transaction.
package sqliteschema

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

const upMarker = "-- +schema Up"

// Apply executes every .sql file under root in lexical order.
func Apply(ctx context.Context, sqlDB *sql.DB, schemaFS fs.FS, root string) error {
	if sqlDB == nil {
		return fmt.Errorf("sql db is required")
	}
	if schemaFS == nil {
		return fmt.Errorf("schema fs is required")
	}
	files, err := List(schemaFS, root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no schema files under %q", cleanRoot(root))
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	for _, file := range files {
		content, err := fs.ReadFile(schemaFS, file)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("read schema %s: %w", file, err)
		}
		statement := Statement(string(content))
		if statement == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec schema %s: %w", file, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// List returns the .sql paths under root sorted by name.
func List(schemaFS fs.FS, root string) ([]string, error) {
	dir := cleanRoot(root)
	entries, err := fs.ReadDir(schemaFS, dir)
	if err != nil {
		return nil, fmt.Errorf("read schema dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		files = append(files, path.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Statement returns the SQL that follows the "-- +schema Up" marker, or the
// whole file when no marker is present.
func Statement(content string) string {
	if idx := strings.Index(content, upMarker); idx >= 0 {
		content = content[idx+len(upMarker):]
	}
	return strings.TrimSpace(content)
}

func cleanRoot(root string) string {
	root = strings.TrimSpace(root)
	if root == "" {
		return "."
	}
	return path.Clean(root)
}
