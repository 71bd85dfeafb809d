package watcher

import (
	"context"
	"fmt"

	"deskflow/internal/domain"
	"deskflow/internal/ports"
)

// Aggregator polls the usage store for today's category summary and, on
// every successful replacement, synchronously recomputes the score and
// hands it to the Persister. That replacement is the only trigger for
// scoring and persistence, so the stored record always matches the
// displayed score.
type Aggregator struct {
	usage      ports.UsageStore
	state      *State
	persister  *Persister
	productive domain.ProductiveSet
	metrics    ports.EngineMetrics
	logger     ports.Logger
}

func NewAggregator(
	usage ports.UsageStore,
	state *State,
	persister *Persister,
	productive domain.ProductiveSet,
	metrics ports.EngineMetrics,
	logger ports.Logger,
) *Aggregator {
	return &Aggregator{
		usage:      usage,
		state:      state,
		persister:  persister,
		productive: productive,
		metrics:    metrics,
		logger:     logger,
	}
}

// Tick performs one summary poll. On failure the last good summary, score,
// and persisted record all stay untouched; the next tick retries.
func (a *Aggregator) Tick(ctx context.Context) {
	summary, err := a.usage.CategorySummaryToday(ctx)
	if err != nil {
		a.logger.Error(fmt.Sprintf("Category summary poll failed: %v", err))
		a.metrics.RecordPollFailure(ctx, "category-summary")
		return
	}
	if ctx.Err() != nil {
		return
	}

	a.state.SetSummary(summary)
	a.metrics.RecordSummary(ctx, summary)

	score := domain.ComputeScore(summary, a.productive)
	a.state.SetScore(score)
	a.metrics.RecordScore(ctx, score)

	if a.persister.Record(ctx, score.Percent) {
		a.metrics.RecordScorePersisted(ctx)
	}
}
