// Package turso provides libsql-backed implementations of the storage ports.
package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"deskflow/internal/domain"
	"deskflow/internal/infrastructure/database"
)

const (
	lastRunKey = "last_run"
	maxRetries = 3
)

// UsageRepository persists window usage sessions and answers aggregate
// queries over them.
type UsageRepository struct {
	client *database.Client
	now    func() time.Time
}

func NewUsageRepository(client *database.Client) *UsageRepository {
	return &UsageRepository{
		client: client,
		now:    time.Now,
	}
}

// CategorySummaryToday returns total tracked seconds per category for the
// current local date.
func (r *UsageRepository) CategorySummaryToday(ctx context.Context) (domain.CategorySummary, error) {
	date := domain.DateOf(r.now())

	rows, err := database.WithRetry(ctx, maxRetries, func() (*sql.Rows, error) {
		return r.client.QueryContext(ctx, `
			SELECT category, SUM(end_time - start_time)
			FROM app_usage
			WHERE date = ?
			GROUP BY category
		`, date)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query category summary: %w", err)
	}
	defer rows.Close()

	summary := domain.CategorySummary{}
	for rows.Next() {
		var category string
		var seconds int64
		if err := rows.Scan(&category, &seconds); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		summary[category] = seconds
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category rows: %w", err)
	}

	return summary, nil
}

// SaveSession inserts a closed usage session.
func (r *UsageRepository) SaveSession(ctx context.Context, session domain.UsageSession) error {
	_, err := database.WithRetry(ctx, maxRetries, func() (sql.Result, error) {
		return r.client.ExecContext(ctx, `
			INSERT INTO app_usage (id, process, title, category, start_time, end_time, date)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, session.ID, session.Process, session.Title, session.Category, session.StartTime, session.EndTime, session.Date())
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// ClearUsage deletes all recorded sessions.
func (r *UsageRepository) ClearUsage(ctx context.Context) error {
	_, err := database.WithRetry(ctx, maxRetries, func() (sql.Result, error) {
		return r.client.ExecContext(ctx, `DELETE FROM app_usage`)
	})
	if err != nil {
		return fmt.Errorf("failed to clear usage: %w", err)
	}
	return nil
}

// LastRunDate returns the stored last-run marker, or "" when none exists.
func (r *UsageRepository) LastRunDate(ctx context.Context) (string, error) {
	var value string
	err := r.client.QueryRowContext(ctx, `SELECT value FROM tracker_meta WHERE key = ?`, lastRunKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read last run date: %w", err)
	}
	return value, nil
}

// SetLastRunDate stores the last-run marker.
func (r *UsageRepository) SetLastRunDate(ctx context.Context, date string) error {
	_, err := database.WithRetry(ctx, maxRetries, func() (sql.Result, error) {
		return r.client.ExecContext(ctx, `
			INSERT OR REPLACE INTO tracker_meta (key, value) VALUES (?, ?)
		`, lastRunKey, date)
	})
	if err != nil {
		return fmt.Errorf("failed to set last run date: %w", err)
	}
	return nil
}
