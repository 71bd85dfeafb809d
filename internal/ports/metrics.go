package ports

import (
	"context"

	"deskflow/internal/domain"
)

// EngineMetrics receives the engine's operational signals. Implementations
// must be safe for concurrent use; a noop implementation exists for when
// export is disabled.
type EngineMetrics interface {
	RecordSample(ctx context.Context)
	RecordPollFailure(ctx context.Context, call string)
	RecordSummary(ctx context.Context, summary domain.CategorySummary)
	RecordScore(ctx context.Context, score domain.ProductivityScore)
	RecordScorePersisted(ctx context.Context)
}
