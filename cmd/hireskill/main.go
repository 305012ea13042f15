// Package main provides the hireskill CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sakib9797/Hire-Skill/internal/config"
	"github.com/Sakib9797/Hire-Skill/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "hireskill",
	Short: "Career and job matching engine",
	Long: "hireskill matches job-seeker profiles against a curated career catalog " +
		"and dynamic job-posting corpora using TF-IDF similarity with rule-based " +
		"score adjustments, and builds skill-gap learning plans.",
	PersistentPreRunE: setup,
}

var (
	flagConfig   string
	flagVerbose  bool
	flagJSONLogs bool

	cfg *config.Config
	log *zap.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit logs as JSON")
}

func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	log, err = logger.New(flagJSONLogs, flagVerbose || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
