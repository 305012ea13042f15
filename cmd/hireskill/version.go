package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Actual version can be specified in build command.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	// No config or logger needed for version.
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("hireskill version: %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
