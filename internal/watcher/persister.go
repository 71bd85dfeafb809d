package watcher

import (
	"context"
	"fmt"
	"time"

	"deskflow/internal/domain"
	"deskflow/internal/ports"
)

// Persister writes the daily score record. The date key is computed fresh
// from the clock at every write, never cached, so all writes within a day
// target the same upsert key and a write after midnight rolls to the new
// one. Writes are fire-and-forget: failure is logged, not retried, and
// never rolls back the in-memory score.
type Persister struct {
	store  ports.ScoreStore
	now    func() time.Time
	logger ports.Logger
}

func NewPersister(store ports.ScoreStore, logger ports.Logger) *Persister {
	return &Persister{store: store, now: time.Now, logger: logger}
}

// Record upserts today's score. It returns whether the write succeeded so
// callers can count persisted scores; errors are already absorbed.
func (p *Persister) Record(ctx context.Context, percent float64) bool {
	date := domain.DateOf(p.now())
	if err := p.store.UpsertDailyScore(ctx, date, percent); err != nil {
		p.logger.Error(fmt.Sprintf("Score write for %s failed: %v", date, err))
		return false
	}
	p.logger.Debug(fmt.Sprintf("Stored score %.1f for %s", percent, date))
	return true
}
