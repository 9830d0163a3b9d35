// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cogcities/drzone/internal/config"
	"github.com/cogcities/drzone/internal/gateway"
	"github.com/cogcities/drzone/internal/snapshot"
	"github.com/cogcities/drzone/internal/usecase"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collects the ecosystem graph and writes JSON snapshots",
	Long: `Queries the GitHub GraphQL API for the authenticated user's ecosystem
(user info, organizations, repositories, followers, following, starred
repositories, gists), paginating each collection to exhaustion, and writes
one JSON snapshot per entity type plus a summary of counts.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := newLogger(verbose)

		cfg := config.Load()
		if cfg.GitHubToken == "" {
			fmt.Fprintln(os.Stderr, "Error: GITHUB_TOKEN environment variable is not set.")
			os.Exit(1)
		}
		logger.Info().
			Str("user", cfg.EcosystemUser).
			Str("data_dir", cfg.DataDir).
			Msg("starting collect stage")

		// Inject dependencies and run the collection.
		githubGateway := gateway.NewGitHubGateway(cfg.GitHubToken, logger)
		store := snapshot.NewStore(cfg.DataDir)
		collector := usecase.NewCollector(githubGateway, store, logger, cfg.RepoLimit, cfg.StarredLimit)

		summary, err := collector.Run(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to collect ecosystem data: %v\n", err)
			os.Exit(1)
		}

		// Print the derived summary to standard output.
		jsonData, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal summary to JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(jsonData))
	},
}

func init() {
	rootCmd.AddCommand(collectCmd)
}
