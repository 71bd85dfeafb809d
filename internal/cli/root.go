// Package cli wires the adapters together behind the deskflow commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deskflow",
	Short: "Desktop activity awareness client",
	Long: `deskflow tracks which windows are open and focused on your desktop,
classifies the time into categories, and keeps a daily productivity score.

Run "deskflow watch" to start tracking, "deskflow dashboard" for a live
terminal view, or "deskflow serve" for a local JSON API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
