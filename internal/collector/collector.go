package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"deskflow/internal/domain"
	"deskflow/internal/ports"
)

type trackKey struct {
	Title   string
	Process string
}

type tracked struct {
	startTime int64
	lastSeen  int64
}

// Collector turns visible-window snapshots into categorized usage
// sessions. A window that stays visible is flushed every flush interval
// and keeps being tracked; a window that disappears is closed at its last
// sighting. Sessions are what the usage store aggregates into the daily
// category summary.
type Collector struct {
	inspector     ports.WindowInspector
	store         ports.UsageStore
	logger        ports.Logger
	now           func() time.Time
	flushInterval time.Duration

	windows  map[trackKey]*tracked
	lastDate string
}

func New(inspector ports.WindowInspector, store ports.UsageStore, flushInterval time.Duration, logger ports.Logger) *Collector {
	return &Collector{
		inspector:     inspector,
		store:         store,
		logger:        logger,
		now:           time.Now,
		flushInterval: flushInterval,
		windows:       make(map[trackKey]*tracked),
	}
}

// Run ticks the collector until the context is cancelled.
func (c *Collector) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick(ctx)
		}
	}
}

// Tick updates window tracking from the current snapshot and flushes any
// session that ended or reached the flush interval. Store failures are
// logged and absorbed; tracking state survives them so no time is lost.
func (c *Collector) Tick(ctx context.Context) {
	if err := c.EnsureDay(ctx); err != nil {
		c.logger.Error(fmt.Sprintf("Day rollover check failed: %v", err))
	}

	snap, err := c.inspector.VisibleWindows(ctx)
	if err != nil {
		c.logger.Error(fmt.Sprintf("Visible windows fetch failed: %v", err))
		return
	}
	if ctx.Err() != nil {
		return
	}

	now := c.now().Unix()

	seen := make(map[trackKey]bool, len(snap))
	for _, w := range snap {
		key := trackKey{Title: w.Title, Process: w.Process}
		seen[key] = true
		if entry, ok := c.windows[key]; ok {
			entry.lastSeen = now
		} else {
			c.windows[key] = &tracked{startTime: now, lastSeen: now}
		}
	}

	flushSecs := int64(c.flushInterval / time.Second)
	for key, entry := range c.windows {
		gone := !seen[key]
		due := now-entry.startTime >= flushSecs
		if !gone && !due {
			continue
		}

		end := now
		if gone {
			end = entry.lastSeen
		}

		session := domain.UsageSession{
			ID:        uuid.NewString(),
			Process:   key.Process,
			Title:     key.Title,
			Category:  domain.Classify(key.Title, key.Process),
			StartTime: entry.startTime,
			EndTime:   end,
		}

		if err := c.store.SaveSession(ctx, session); err != nil {
			c.logger.Error(fmt.Sprintf("Session save failed for %s: %v", key.Process, err))
			continue
		}

		if gone {
			delete(c.windows, key)
		} else {
			entry.startTime = now
			entry.lastSeen = now
		}
	}
}

// EnsureDay clears the usage table when the local calendar date has moved
// past the recorded last-run marker, so the summary only ever covers
// "today". Called on startup and on every tick.
func (c *Collector) EnsureDay(ctx context.Context) error {
	today := domain.DateOf(c.now())
	if c.lastDate == today {
		return nil
	}

	lastRun, err := c.store.LastRunDate(ctx)
	if err != nil {
		return fmt.Errorf("read last run date: %w", err)
	}

	if lastRun != today {
		if err := c.store.ClearUsage(ctx); err != nil {
			return fmt.Errorf("clear usage: %w", err)
		}
		if err := c.store.SetLastRunDate(ctx, today); err != nil {
			return fmt.Errorf("set last run date: %w", err)
		}
		c.logger.Debug(fmt.Sprintf("Cleared usage for new day %s", today))
	}

	c.lastDate = today
	return nil
}
