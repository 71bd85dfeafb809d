package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"deskflow/internal/ports"
)

// Config holds the engine's polling cadences. The exact values are
// tunable, not contractual; the summary poll is intentionally slower than
// the sample poll.
type Config struct {
	SampleInterval  time.Duration
	SummaryInterval time.Duration
}

// Engine drives the Sampler and Aggregator on two independent tickers.
// Each tick launches its poll in its own goroutine, so a slow backend call
// never delays the next tick; two calls of the same kind may be in flight
// at once and the last completion wins via whole-value overwrite. Stop is
// idempotent and lets in-flight calls finish; the context liveness checks
// inside the ticks discard their results.
type Engine struct {
	sampler    *Sampler
	aggregator *Aggregator
	cfg        Config
	logger     ports.Logger

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewEngine(sampler *Sampler, aggregator *Aggregator, cfg Config, logger ports.Logger) *Engine {
	return &Engine{
		sampler:    sampler,
		aggregator: aggregator,
		cfg:        cfg,
		logger:     logger,
	}
}

// Start begins both polling loops and returns immediately. The loops stop
// when the parent context is cancelled or Stop is called.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)

	e.logger.Debug(fmt.Sprintf("Engine started: sample every %s, summarize every %s",
		e.cfg.SampleInterval, e.cfg.SummaryInterval))

	// Prime both views immediately so consumers are not empty for a full
	// interval after startup.
	go e.sampler.Tick(ctx)
	go e.aggregator.Tick(ctx)

	e.wg.Add(2)
	go e.loop(ctx, e.cfg.SampleInterval, e.sampler.Tick)
	go e.loop(ctx, e.cfg.SummaryInterval, e.aggregator.Tick)
}

func (e *Engine) loop(ctx context.Context, interval time.Duration, tick func(context.Context)) {
	defer e.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go tick(ctx)
		}
	}
}

// Stop cancels both polling loops and waits for them to exit. Calls in
// flight are allowed to complete; their results are discarded by the
// liveness checks. Safe to call more than once.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		if e.cancel != nil {
			e.cancel()
		}
		e.wg.Wait()
		e.logger.Debug("Engine stopped")
	})
}
