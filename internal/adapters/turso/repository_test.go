package turso

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"deskflow/internal/domain"
	"deskflow/internal/infrastructure/database"
	"deskflow/internal/migrate"
)

func newTestClient(t *testing.T) *database.Client {
	t.Helper()

	db, err := sql.Open("libsql", "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrate.RunAll(context.Background(), db); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	return &database.Client{DB: db}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestUsageRepository_CategorySummaryToday(t *testing.T) {
	client := newTestClient(t)
	repo := NewUsageRepository(client)
	ctx := context.Background()

	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	repo.now = fixedClock(now)

	sessions := []domain.UsageSession{
		{ID: "a", Process: "code", Title: "editor", Category: "Work", StartTime: now.Unix(), EndTime: now.Unix() + 120},
		{ID: "b", Process: "code", Title: "editor", Category: "Work", StartTime: now.Unix() + 200, EndTime: now.Unix() + 260},
		{ID: "c", Process: "spotify", Title: "playlist", Category: "Music", StartTime: now.Unix(), EndTime: now.Unix() + 30},
	}
	for _, s := range sessions {
		if err := repo.SaveSession(ctx, s); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
	}

	// A session from another day must not count.
	yesterday := now.AddDate(0, 0, -1)
	old := domain.UsageSession{ID: "d", Process: "code", Title: "editor", Category: "Work", StartTime: yesterday.Unix(), EndTime: yesterday.Unix() + 600}
	if err := repo.SaveSession(ctx, old); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	summary, err := repo.CategorySummaryToday(ctx)
	if err != nil {
		t.Fatalf("CategorySummaryToday failed: %v", err)
	}

	if summary["Work"] != 180 {
		t.Errorf("Work seconds: expected 180, got %d", summary["Work"])
	}
	if summary["Music"] != 30 {
		t.Errorf("Music seconds: expected 30, got %d", summary["Music"])
	}
	if len(summary) != 2 {
		t.Errorf("expected 2 categories, got %d", len(summary))
	}
}

func TestUsageRepository_ClearUsage(t *testing.T) {
	client := newTestClient(t)
	repo := NewUsageRepository(client)
	ctx := context.Background()

	now := time.Now()
	repo.now = fixedClock(now)

	s := domain.UsageSession{ID: "a", Process: "code", Title: "editor", Category: "Work", StartTime: now.Unix(), EndTime: now.Unix() + 60}
	if err := repo.SaveSession(ctx, s); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	if err := repo.ClearUsage(ctx); err != nil {
		t.Fatalf("ClearUsage failed: %v", err)
	}

	summary, err := repo.CategorySummaryToday(ctx)
	if err != nil {
		t.Fatalf("CategorySummaryToday failed: %v", err)
	}
	if len(summary) != 0 {
		t.Errorf("expected empty summary after clear, got %v", summary)
	}
}

func TestUsageRepository_LastRunDate(t *testing.T) {
	client := newTestClient(t)
	repo := NewUsageRepository(client)
	ctx := context.Background()

	date, err := repo.LastRunDate(ctx)
	if err != nil {
		t.Fatalf("LastRunDate failed: %v", err)
	}
	if date != "" {
		t.Errorf("expected empty marker on fresh database, got %q", date)
	}

	if err := repo.SetLastRunDate(ctx, "2024-03-15"); err != nil {
		t.Fatalf("SetLastRunDate failed: %v", err)
	}
	if err := repo.SetLastRunDate(ctx, "2024-03-16"); err != nil {
		t.Fatalf("SetLastRunDate failed: %v", err)
	}

	date, err = repo.LastRunDate(ctx)
	if err != nil {
		t.Fatalf("LastRunDate failed: %v", err)
	}
	if date != "2024-03-16" {
		t.Errorf("expected latest marker, got %q", date)
	}
}

func TestScoreRepository_UpsertReplacesExistingRow(t *testing.T) {
	client := newTestClient(t)
	repo := NewScoreRepository(client)
	ctx := context.Background()

	if err := repo.UpsertDailyScore(ctx, "2024-03-15", 72.5); err != nil {
		t.Fatalf("UpsertDailyScore failed: %v", err)
	}
	if err := repo.UpsertDailyScore(ctx, "2024-03-15", 81.3); err != nil {
		t.Fatalf("UpsertDailyScore failed: %v", err)
	}

	var count int
	if err := client.QueryRowContext(ctx, `SELECT COUNT(*) FROM productivity_scores`).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single row per date, got %d", count)
	}

	score, ok, err := repo.ScoreFor(ctx, "2024-03-15")
	if err != nil {
		t.Fatalf("ScoreFor failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a stored score")
	}
	if score != 81.3 {
		t.Errorf("expected latest score 81.3, got %g", score)
	}
}

func TestScoreRepository_ScoreForMissingDate(t *testing.T) {
	client := newTestClient(t)
	repo := NewScoreRepository(client)

	_, ok, err := repo.ScoreFor(context.Background(), "1999-01-01")
	if err != nil {
		t.Fatalf("ScoreFor failed: %v", err)
	}
	if ok {
		t.Error("expected no score for unknown date")
	}
}
