package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"deskflow/internal/collector"
	"deskflow/internal/domain"
	"deskflow/internal/watcher"
	"deskflow/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tracked state as a local JSON API",
	Long: `Start the local JSON API server.

Tracking runs in the background; the API exposes the current state,
score, and category summary.

Examples:
  deskflow serve              # Start on default port 8080
  deskflow serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
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
	defer engine.Stop()

	server := web.NewServer(servePort, state, rt.log)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	return server.ListenAndServe()
}
