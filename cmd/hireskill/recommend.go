package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sakib9797/Hire-Skill/internal/careers"
	"github.com/Sakib9797/Hire-Skill/internal/observability"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend career paths for a profile",
	Long: "Scores a job-seeker profile against the curated career catalog and " +
		"prints the top career paths with skill gaps and learning rationale.",
	RunE: runRecommend,
}

var (
	recommendProfile string
	recommendTop     int
	recommendJSON    bool
	recommendOut     string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to profile JSON file")
	recommendCmd.Flags().IntVarP(&recommendTop, "top", "n", careers.DefaultRecommendations, "Number of recommendations (1-15)")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Print results as JSON")
	recommendCmd.Flags().StringVarP(&recommendOut, "out", "o", "", "Write JSON results to a file")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	profile, err := loadProfile(recommendProfile)
	if err != nil {
		return err
	}

	top := recommendTop
	if cfg.TopCareers > 0 && !cmd.Flags().Changed("top") {
		top = cfg.TopCareers
	}

	recommender := careers.NewRecommender(nil)
	recs, err := recommender.Recommend(profile, top)
	if err != nil {
		return err
	}

	log.Debug("scored career catalog",
		zap.Int("recommendations", len(recs)),
		zap.Int("profile_skills", len(profile.Skills)))

	if recommendJSON || recommendOut != "" {
		return writeJSON(recommendOut, recs)
	}

	observability.NewPrinter(os.Stdout).PrintRecommendations(recs)
	return nil
}
