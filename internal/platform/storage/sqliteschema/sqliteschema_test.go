package sqliteschema

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyCreatesTablesInNameOrder(t *testing.T) {
	db := openInMemoryDB(t)

	schema := fstest.MapFS{
		"schema/002_rows.sql": &fstest.MapFile{
			Data: []byte("-- +schema Up\nCREATE TABLE rows(item_id TEXT REFERENCES items(id));"),
		},
		"schema/001_items.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE items(id TEXT PRIMARY KEY);"),
		},
		"schema/readme.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	if err := Apply(context.Background(), db, schema, "schema"); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	for _, table := range []string{"items", "rows"} {
		if !tableExists(t, db, table) {
			t.Fatalf("expected table %q to exist", table)
		}
	}
}

func TestApplyRollsBackOnFailure(t *testing.T) {
	db := openInMemoryDB(t)

	schema := fstest.MapFS{
		"001_items.sql":  &fstest.MapFile{Data: []byte("CREATE TABLE items(id TEXT);")},
		"002_broken.sql": &fstest.MapFile{Data: []byte("CREATE TABLE (;")},
	}

	err := Apply(context.Background(), db, schema, "")
	if err == nil {
		t.Fatal("expected schema error")
	}
	if !strings.Contains(err.Error(), "002_broken.sql") {
		t.Fatalf("error = %v, want failing file name", err)
	}
	if tableExists(t, db, "items") {
		t.Fatal("expected rollback to discard earlier tables")
	}
}

func TestApplyRejectsEmptySchemaDir(t *testing.T) {
	db := openInMemoryDB(t)

	if err := Apply(context.Background(), db, fstest.MapFS{"notes.md": &fstest.MapFile{}}, "."); err == nil {
		t.Fatal("expected error for schema dir without sql files")
	}
}

func TestApplyRejectsNilInputs(t *testing.T) {
	if err := Apply(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("expected nil db error")
	}
	db := openInMemoryDB(t)
	if err := Apply(context.Background(), db, nil, ""); err == nil {
		t.Fatal("expected nil fs error")
	}
}

func TestStatementStripsHeader(t *testing.T) {
	t.Parallel()

	got := Statement("-- comment\n-- +schema Up\n  CREATE TABLE a(id INT);\n")
	if got != "CREATE TABLE a(id INT);" {
		t.Fatalf("Statement() = %q", got)
	}
	if got := Statement("  SELECT 1;  "); got != "SELECT 1;" {
		t.Fatalf("Statement() without marker = %q", got)
	}
}

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count); err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	return count > 0
}
