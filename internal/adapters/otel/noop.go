package otel

import (
	"context"

	"deskflow/internal/domain"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordSample(ctx context.Context) {}

func (e *NoOpExporter) RecordPollFailure(ctx context.Context, call string) {}

func (e *NoOpExporter) RecordSummary(ctx context.Context, s domain.CategorySummary) {}

func (e *NoOpExporter) RecordScore(ctx context.Context, score domain.ProductivityScore) {}

func (e *NoOpExporter) RecordScorePersisted(ctx context.Context) {}

// Close is a no-op.
func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
