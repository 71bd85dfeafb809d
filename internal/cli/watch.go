package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	otelexport "deskflow/internal/adapters/otel"
	"deskflow/internal/collector"
	"deskflow/internal/domain"
	"deskflow/internal/ports"
	"deskflow/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Track window activity and keep the daily score current",
	Long: `Track window activity in the background.

Polls the window inspector for the focused and visible windows, records
categorized usage sessions, and keeps the daily productivity score
up to date in the database. Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := setup(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	metrics, closeMetrics := buildMetrics(ctx, rt)
	defer closeMetrics()

	insp := rt.newInspector()
	if err := insp.InitPosition(ctx); err != nil {
		rt.log.Debug(fmt.Sprintf("Inspector position init skipped: %v", err))
	}

	state := watcher.NewState()
	sampler := watcher.NewSampler(insp, state, metrics, rt.log)
	persister := watcher.NewPersister(rt.scores, rt.log)
	aggregator := watcher.NewAggregator(rt.usage, state, persister, domain.DefaultProductiveCategories(), metrics, rt.log)

	engine := watcher.NewEngine(sampler, aggregator, watcher.Config{
		SampleInterval:  rt.cfg.Watch.SampleInterval,
		SummaryInterval: rt.cfg.Watch.SummaryInterval,
	}, rt.log)

	coll := collector.New(insp, rt.usage, rt.cfg.Watch.FlushInterval, rt.log)
	go coll.Run(ctx, rt.cfg.Watch.CollectInterval)

	engine.Start(ctx)
	<-ctx.Done()
	engine.Stop()

	return nil
}

// buildMetrics returns the OTEL exporter when enabled and configured, a
// noop otherwise. The returned func flushes and closes the exporter.
func buildMetrics(ctx context.Context, rt *runtime) (ports.EngineMetrics, func()) {
	if rt.cfg.Otel.Enabled && rt.cfg.Otel.Endpoint != "" {
		exp, err := otelexport.NewExporter(ctx, rt.cfg.Otel)
		if err == nil {
			return exp, func() {
				if err := exp.Close(context.Background()); err != nil {
					rt.log.Error(fmt.Sprintf("Metrics shutdown failed: %v", err))
				}
			}
		}
		rt.log.Error(fmt.Sprintf("Metrics exporter unavailable, continuing without: %v", err))
	}
	return otelexport.NewNoOpExporter(), func() {}
}
