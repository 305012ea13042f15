package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sakib9797/Hire-Skill/internal/ingest"
)

var generateJobsCmd = &cobra.Command{
	Use:   "generate-jobs",
	Short: "Generate a sample job corpus",
	Long: "Builds a deterministic sample corpus of realistic postings for trying " +
		"the matcher without scraping live boards. Families: " +
		strings.Join(ingest.RoleFamilies(), ", ") + ".",
	RunE: runGenerateJobs,
}

var (
	generateCount  int
	generateFamily string
	generateSeed   int64
	generateOut    string
	generateSave   bool
)

func init() {
	generateJobsCmd.Flags().IntVarP(&generateCount, "count", "c", 50, "Number of postings to generate")
	generateJobsCmd.Flags().StringVar(&generateFamily, "family", "", "Restrict to one role family")
	generateJobsCmd.Flags().Int64Var(&generateSeed, "seed", 1, "Random seed (same seed, same corpus)")
	generateJobsCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Write the corpus JSON to a file (default stdout)")
	generateJobsCmd.Flags().BoolVar(&generateSave, "save", false, "Save postings to the configured database")

	rootCmd.AddCommand(generateJobsCmd)
}

func runGenerateJobs(cmd *cobra.Command, _ []string) error {
	jobs, err := ingest.GenerateSampleJobs(generateCount, generateFamily, generateSeed)
	if err != nil {
		return err
	}

	if generateSave {
		if err := saveJobsToStore(cmd.Context(), jobs); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Saved %d generated postings to database\n", len(jobs))
		return nil
	}
	return writeJSON(generateOut, jobs)
}
