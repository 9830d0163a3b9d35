// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "drzone",
	Short: "Ecosystem tracking for a GitHub account's organizational graph.",
	Long: `drzone polls the GitHub GraphQL API for an account's ecosystem
(organizations, repositories, followers, following, starred repositories,
gists), persists the results as JSON snapshots, and renders a Markdown
dashboard from them. The collect and report stages run independently and
are coupled only through the snapshot directory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env file is optional; a missing one is not an error.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}

// newLogger builds the console logger shared by both stages.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
