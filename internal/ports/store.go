package ports

import (
	"context"

	"deskflow/internal/domain"
)

// UsageStore persists categorized usage sessions and answers the daily
// category summary query. The store is the single source of truth for
// accumulated totals.
type UsageStore interface {
	CategorySummaryToday(ctx context.Context) (domain.CategorySummary, error)
	SaveSession(ctx context.Context, session domain.UsageSession) error
	ClearUsage(ctx context.Context) error

	// LastRunDate and SetLastRunDate track the day-rollover marker.
	// LastRunDate returns "" when no marker has been written yet.
	LastRunDate(ctx context.Context) (string, error)
	SetLastRunDate(ctx context.Context, date string) error
}

// ScoreStore persists one productivity score record per calendar date.
// Writing twice for the same date must overwrite, never duplicate.
type ScoreStore interface {
	UpsertDailyScore(ctx context.Context, date string, score float64) error
}
