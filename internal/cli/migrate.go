package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"deskflow/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run all pending database migrations.

The watch, dashboard, and serve commands do this automatically on
startup; this command exists to migrate without starting tracking.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := setup(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	version, _, err := migrate.CurrentVersion(ctx, rt.client.DB)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	fmt.Printf("Database is at migration version %d\n", version)
	return nil
}
