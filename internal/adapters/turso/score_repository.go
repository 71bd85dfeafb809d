package turso

import (
	"context"
	"database/sql"
	"fmt"

	"deskflow/internal/infrastructure/database"
)

// ScoreRepository persists daily productivity scores.
type ScoreRepository struct {
	client *database.Client
}

func NewScoreRepository(client *database.Client) *ScoreRepository {
	return &ScoreRepository{client: client}
}

// UpsertDailyScore writes the score for the given date, replacing any
// existing row for that date.
func (r *ScoreRepository) UpsertDailyScore(ctx context.Context, date string, score float64) error {
	_, err := database.WithRetry(ctx, maxRetries, func() (sql.Result, error) {
		return r.client.ExecContext(ctx, `
			INSERT OR REPLACE INTO productivity_scores (date, score) VALUES (?, ?)
		`, date, score)
	})
	if err != nil {
		return fmt.Errorf("failed to upsert daily score: %w", err)
	}
	return nil
}

// ScoreFor returns the stored score for a date, or false when none exists.
func (r *ScoreRepository) ScoreFor(ctx context.Context, date string) (float64, bool, error) {
	var score float64
	err := r.client.QueryRowContext(ctx, `SELECT score FROM productivity_scores WHERE date = ?`, date).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read daily score: %w", err)
	}
	return score, true, nil
}
