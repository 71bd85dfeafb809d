package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"deskflow/internal/domain"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print today's productivity score",
	Long: `Compute and print today's productivity score from recorded usage.

Examples:
  deskflow score          # Print the score
  deskflow score --store  # Print and write it to the database`,
	RunE: runScore,
}

var scoreStore bool

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().BoolVar(&scoreStore, "store", false, "Also write the score to the database")
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := setup(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	summary, err := rt.usage.CategorySummaryToday(ctx)
	if err != nil {
		return fmt.Errorf("failed to read today's usage: %w", err)
	}

	score := domain.ComputeScore(summary, domain.DefaultProductiveCategories())

	fmt.Printf("Productivity: %.1f%% (%s)\n", score.Percent, score.Rating)
	for _, row := range summary.Displayed() {
		fmt.Printf("  %-14s %s\n", row.Name, (time.Duration(row.Seconds) * time.Second).String())
	}

	if scoreStore {
		date := domain.DateOf(time.Now())
		if err := rt.scores.UpsertDailyScore(ctx, date, score.Percent); err != nil {
			return fmt.Errorf("failed to store score: %w", err)
		}
		fmt.Printf("Stored score for %s\n", date)
	}

	return nil
}
