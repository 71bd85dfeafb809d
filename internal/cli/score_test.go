package cli

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"deskflow/internal/adapters/turso"
	"deskflow/internal/domain"
	"deskflow/internal/infrastructure/database"
	"deskflow/internal/migrate"
)

// testDB creates an in-memory database with all migrations applied and
// installs it as the command database for the test's duration.
func testDB(t *testing.T) *database.Client {
	t.Helper()

	db, err := sql.Open("libsql", "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	if err := migrate.RunAll(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	client := &database.Client{DB: db}
	testDBOverride = client
	t.Cleanup(func() {
		testDBOverride = nil
		db.Close()
	})

	return client
}

func TestScoreCommandStoresTodaysScore(t *testing.T) {
	client := testDB(t)
	ctx := context.Background()

	now := time.Now()
	usage := turso.NewUsageRepository(client)
	sessions := []domain.UsageSession{
		{ID: "a", Process: "code", Title: "editor", Category: "Work", StartTime: now.Unix() - 300, EndTime: now.Unix() - 120},
		{ID: "b", Process: "game", Title: "arena", Category: "Gaming", StartTime: now.Unix() - 120, EndTime: now.Unix() - 60},
	}
	for _, s := range sessions {
		if err := usage.SaveSession(ctx, s); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
	}

	scoreStore = true
	defer func() { scoreStore = false }()

	scoreCmd.SetContext(ctx)
	if err := runScore(scoreCmd, nil); err != nil {
		t.Fatalf("score command failed: %v", err)
	}

	scores := turso.NewScoreRepository(client)
	got, ok, err := scores.ScoreFor(ctx, domain.DateOf(now))
	if err != nil {
		t.Fatalf("ScoreFor failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a stored score for today")
	}

	// 180s Work out of 240s total.
	if got != 75.0 {
		t.Errorf("expected score 75.0, got %g", got)
	}
}

func TestScoreCommandEmptyDay(t *testing.T) {
	testDB(t)

	scoreCmd.SetContext(context.Background())
	if err := runScore(scoreCmd, nil); err != nil {
		t.Fatalf("score command failed on empty day: %v", err)
	}
}
