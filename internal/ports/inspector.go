package ports

import (
	"context"

	"deskflow/internal/domain"
)

// WindowInspector is the OS-facing collaborator that answers point-in-time
// window queries. Implementations talk to the platform helper; the engine
// only ever pulls from it.
type WindowInspector interface {
	// ActiveWindow returns the focused window. The bool is false when the
	// inspector reports no focused window; callers keep their stale value
	// in that case.
	ActiveWindow(ctx context.Context) (domain.WindowObservation, bool, error)

	// VisibleWindows returns all currently visible windows in the order
	// the platform enumerates them.
	VisibleWindows(ctx context.Context) (domain.WindowSnapshot, error)

	// InitPosition asks the helper to place the HUD window. One-time, on
	// startup; not part of the polling data flow.
	InitPosition(ctx context.Context) error
}
