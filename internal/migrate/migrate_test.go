package migrate

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/tursodatabase/go-libsql"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("libsql", "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestLoadMigrations(t *testing.T) {
	all, err := LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations failed: %v", err)
	}

	if len(all) == 0 {
		t.Fatal("expected at least one migration")
	}

	for i := 1; i < len(all); i++ {
		if all[i].Version <= all[i-1].Version {
			t.Errorf("migrations out of order: %d before %d", all[i-1].Version, all[i].Version)
		}
	}

	if all[0].Version != 1 {
		t.Errorf("first migration version: expected 1, got %d", all[0].Version)
	}
	if all[0].DownSQL == "" {
		t.Error("expected down SQL for first migration")
	}
}

func TestRunAll(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := RunAll(ctx, db); err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}

	for _, table := range []string{"app_usage", "productivity_scores", "tracker_meta"} {
		var name string
		err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not created: %v", table, err)
		}
	}

	version, dirty, err := CurrentVersion(ctx, db)
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if dirty {
		t.Error("database should not be dirty after RunAll")
	}
	if version != 1 {
		t.Errorf("version: expected 1, got %d", version)
	}
}

func TestRunAllIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := RunAll(ctx, db); err != nil {
		t.Fatalf("first RunAll failed: %v", err)
	}
	if err := RunAll(ctx, db); err != nil {
		t.Fatalf("second RunAll failed: %v", err)
	}
}
