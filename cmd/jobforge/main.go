// Package main provides the jobforge CLI, the archive-driven job synthesis
// engine for manufacturing orders.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobforge",
	Short: "Archive-driven job synthesis engine",
	Long:  "Jobforge mines archives of completed manufacturing jobs to suggest, synthesize and predict new production jobs for incoming orders.",
}

var (
	flagConfig      string
	flagArchives    string
	flagDatabaseURL string
	flagLogLevel    string
	flagVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagArchives, "archives", "", "Path to a JSON file of job archives")
	rootCmd.PersistentFlags().StringVar(&flagDatabaseURL, "database-url", "", "PostgreSQL connection URL (overrides DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed progress information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
