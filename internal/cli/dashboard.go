package cli

import (
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"deskflow/internal/collector"
	"deskflow/internal/dashboard"
	"deskflow/internal/domain"
	"deskflow/internal/watcher"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Live terminal view of today's activity",
	Long: `Open a live terminal dashboard.

Shows the current productivity score, the focused window, and the time
spent per category today. Tracking runs in the background while the
dashboard is open.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
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

	program := tea.NewProgram(dashboard.New(state), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && err != tea.ErrProgramKilled {
		return err
	}
	return nil
}
