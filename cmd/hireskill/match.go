package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sakib9797/Hire-Skill/internal/jobs"
	"github.com/Sakib9797/Hire-Skill/internal/observability"
	"github.com/Sakib9797/Hire-Skill/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a profile against a job corpus",
	Long: "Filters a job-posting corpus by hard constraints, scores the remainder " +
		"against the profile, and prints the top matches.",
	RunE: runMatch,
}

var (
	matchProfile   string
	matchJobs      string
	matchWeights   string
	matchTop       int
	matchJSON      bool
	matchOut       string
	matchLocation  string
	matchLevel     string
	matchWorkType  string
	matchJobType   string
	matchMinSalary int
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfile, "profile", "p", "", "Path to profile JSON file")
	matchCmd.Flags().StringVarP(&matchJobs, "jobs", "j", "", "Path to job corpus JSON file")
	matchCmd.Flags().StringVar(&matchWeights, "weights", "", "Path to YAML rule-weights override")
	matchCmd.Flags().IntVarP(&matchTop, "top", "n", jobs.DefaultMatches, "Number of matches (1-100)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print results as JSON")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Write JSON results to a file")

	matchCmd.Flags().StringVar(&matchLocation, "location", "", "Location filter (substring; 'any' disables)")
	matchCmd.Flags().StringVar(&matchLevel, "experience-level", "", "Experience level filter (Entry, Mid, Senior)")
	matchCmd.Flags().StringVar(&matchWorkType, "work-type", "", "Work type filter (Remote, Hybrid, On-site)")
	matchCmd.Flags().StringVar(&matchJobType, "job-type", "", "Job type filter (Full-time, Part-time, Contract)")
	matchCmd.Flags().IntVar(&matchMinSalary, "min-salary", 0, "Minimum salary floor filter")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	profile, err := loadProfile(matchProfile)
	if err != nil {
		return err
	}

	corpus, err := loadJobs(cmd.Context(), matchJobs)
	if err != nil {
		return err
	}

	weights, err := loadWeights(matchWeights)
	if err != nil {
		return err
	}

	top := matchTop
	if cfg.TopJobs > 0 && !cmd.Flags().Changed("top") {
		top = cfg.TopJobs
	}

	filters := &types.JobFilters{
		Location:        matchLocation,
		ExperienceLevel: matchLevel,
		WorkType:        matchWorkType,
		JobType:         matchJobType,
		MinSalary:       matchMinSalary,
	}

	matches := jobs.NewMatcher(weights).Match(profile, corpus, filters, top)

	log.Debug("matched job corpus",
		zap.Int("corpus", len(corpus)),
		zap.Int("matches", len(matches)))

	if matchJSON || matchOut != "" {
		return writeJSON(matchOut, matches)
	}

	observability.NewPrinter(os.Stdout).PrintJobMatches(matches)
	return nil
}
