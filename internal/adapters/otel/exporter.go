// Package otel exports engine metrics to an OTEL Collector.
package otel

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"deskflow/internal/domain"
	"deskflow/internal/infrastructure/config"
)

const (
	serviceName    = "deskflow"
	serviceVersion = "1.0.0"
)

// Exporter exports engine metrics to an OTEL Collector.
type Exporter struct {
	provider        *sdkmetric.MeterProvider
	meter           metric.Meter
	samplesTotal    metric.Int64Counter
	pollFailures    metric.Int64Counter
	scoreHist       metric.Float64Histogram
	persistedTotal  metric.Int64Counter
	categorySeconds metric.Float64ObservableGauge

	mu          sync.Mutex
	lastSummary domain.CategorySummary
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg config.Otel) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	samplesTotal, err := meter.Int64Counter(
		"deskflow_samples_total",
		metric.WithDescription("Total number of window samples taken"),
		metric.WithUnit("{sample}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating samples counter: %w", err)
	}

	pollFailures, err := meter.Int64Counter(
		"deskflow_poll_failures_total",
		metric.WithDescription("Total inspector and storage poll failures"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating failures counter: %w", err)
	}

	scoreHist, err := meter.Float64Histogram(
		"deskflow_productivity_score",
		metric.WithDescription("Computed productivity score percent"),
		metric.WithUnit("%"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating score histogram: %w", err)
	}

	persistedTotal, err := meter.Int64Counter(
		"deskflow_scores_persisted_total",
		metric.WithDescription("Total number of score rows written"),
		metric.WithUnit("{write}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating persisted counter: %w", err)
	}

	e := &Exporter{
		provider:       provider,
		meter:          meter,
		samplesTotal:   samplesTotal,
		pollFailures:   pollFailures,
		scoreHist:      scoreHist,
		persistedTotal: persistedTotal,
	}

	categorySeconds, err := meter.Float64ObservableGauge(
		"deskflow_category_seconds",
		metric.WithDescription("Tracked seconds per category for the current day"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating category gauge: %w", err)
	}
	e.categorySeconds = categorySeconds

	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		e.mu.Lock()
		defer e.mu.Unlock()
		for category, seconds := range e.lastSummary {
			o.ObserveFloat64(categorySeconds, float64(seconds),
				metric.WithAttributes(attribute.String("category", category)))
		}
		return nil
	}, categorySeconds)
	if err != nil {
		return nil, fmt.Errorf("registering category callback: %w", err)
	}

	return e, nil
}

func (e *Exporter) RecordSample(ctx context.Context) {
	e.samplesTotal.Add(ctx, 1)
}

func (e *Exporter) RecordPollFailure(ctx context.Context, call string) {
	e.pollFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("call", call)))
}

func (e *Exporter) RecordSummary(ctx context.Context, summary domain.CategorySummary) {
	e.mu.Lock()
	e.lastSummary = summary.Clone()
	e.mu.Unlock()
}

func (e *Exporter) RecordScore(ctx context.Context, score domain.ProductivityScore) {
	e.scoreHist.Record(ctx, score.Percent,
		metric.WithAttributes(attribute.String("rating", string(score.Rating))))
}

func (e *Exporter) RecordScorePersisted(ctx context.Context) {
	e.persistedTotal.Add(ctx, 1)
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
