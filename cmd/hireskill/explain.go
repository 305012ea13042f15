package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sakib9797/Hire-Skill/internal/jobs"
	"github.com/Sakib9797/Hire-Skill/internal/observability"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain a single profile/job match",
	Long:  "Breaks down the matched and missing skills, experience bracket, and title match for one posting.",
	RunE:  runExplain,
}

var (
	explainProfile string
	explainJobs    string
	explainJobID   string
	explainJSON    bool
)

func init() {
	explainCmd.Flags().StringVarP(&explainProfile, "profile", "p", "", "Path to profile JSON file")
	explainCmd.Flags().StringVarP(&explainJobs, "jobs", "j", "", "Path to job corpus JSON file")
	explainCmd.Flags().StringVar(&explainJobID, "job-id", "", "ID of the posting to explain (required)")
	explainCmd.Flags().BoolVar(&explainJSON, "json", false, "Print results as JSON")

	if err := explainCmd.MarkFlagRequired("job-id"); err != nil {
		panic(fmt.Sprintf("failed to mark job-id flag as required: %v", err))
	}

	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, _ []string) error {
	profile, err := loadProfile(explainProfile)
	if err != nil {
		return err
	}

	corpus, err := loadJobs(cmd.Context(), explainJobs)
	if err != nil {
		return err
	}

	for i := range corpus {
		if corpus[i].ID != explainJobID {
			continue
		}
		explanation := jobs.Explain(profile, &corpus[i])
		if explainJSON {
			return writeJSON("", explanation)
		}
		observability.NewPrinter(os.Stdout).PrintExplanation(&corpus[i], explanation)
		return nil
	}
	return fmt.Errorf("job %q not found in corpus", explainJobID)
}
