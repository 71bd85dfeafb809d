package watcher

import (
	"context"
	"fmt"

	"deskflow/internal/ports"
)

// Sampler polls the inspector for the focused window and the full set of
// visible windows, replacing the shared observation and snapshot. The two
// calls run in the same tick but carry independent error boundaries: a
// failed side fetch never undoes the update the other already applied.
type Sampler struct {
	inspector ports.WindowInspector
	state     *State
	metrics   ports.EngineMetrics
	logger    ports.Logger
}

func NewSampler(inspector ports.WindowInspector, state *State, metrics ports.EngineMetrics, logger ports.Logger) *Sampler {
	return &Sampler{
		inspector: inspector,
		state:     state,
		metrics:   metrics,
		logger:    logger,
	}
}

// Tick performs one sampling pass. Failures are logged and absorbed; the
// next tick retries independently. Nothing is applied once ctx is done,
// so an in-flight call finishing after teardown is silently discarded.
func (s *Sampler) Tick(ctx context.Context) {
	obs, ok, err := s.inspector.ActiveWindow(ctx)
	switch {
	case err != nil:
		s.logger.Error(fmt.Sprintf("Active window poll failed: %v", err))
		s.metrics.RecordPollFailure(ctx, "active-window")
	case ctx.Err() != nil:
		return
	case ok:
		// Empty results keep the stale observation; only a real
		// observation replaces it.
		s.state.SetObservation(obs)
		s.metrics.RecordSample(ctx)
	}

	snap, err := s.inspector.VisibleWindows(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Visible windows poll failed: %v", err))
		s.metrics.RecordPollFailure(ctx, "visible-windows")
		return
	}
	if ctx.Err() != nil {
		return
	}
	// Unconditional replacement, empty snapshots included.
	s.state.SetSnapshot(snap)
}
