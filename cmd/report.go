// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cogcities/drzone/internal/config"
	"github.com/cogcities/drzone/internal/snapshot"
	"github.com/cogcities/drzone/internal/usecase"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Renders the ecosystem dashboard from collected snapshots",
	Long: `Reads the JSON snapshots written by the collect stage, derives
organization categories, enterprise mappings, and repository statistics,
and renders them into a single Markdown dashboard. If no summary snapshot
exists the stage logs a skip and writes nothing.`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := newLogger(verbose)

		cfg := config.Load()
		store := snapshot.NewStore(cfg.DataDir)
		reporter := usecase.NewReporter(store, logger, cfg.ReportFile)

		if err := reporter.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
