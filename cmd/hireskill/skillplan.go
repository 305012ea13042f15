package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sakib9797/Hire-Skill/internal/careers"
	"github.com/Sakib9797/Hire-Skill/internal/observability"
)

var skillPlanCmd = &cobra.Command{
	Use:   "skill-plan",
	Short: "Build a learning plan toward a target career",
	Long: "Analyzes the gap between your skills and a target career from the " +
		"catalog, producing a phased learning path and readiness estimate.",
	RunE: runSkillPlan,
}

var (
	skillPlanProfile string
	skillPlanSkills  string
	skillPlanTarget  string
	skillPlanJSON    bool
)

func init() {
	skillPlanCmd.Flags().StringVarP(&skillPlanProfile, "profile", "p", "", "Path to profile JSON file")
	skillPlanCmd.Flags().StringVar(&skillPlanSkills, "skills", "", "Comma-separated skills (alternative to --profile)")
	skillPlanCmd.Flags().StringVarP(&skillPlanTarget, "target", "t", "", "Target career role (required)")
	skillPlanCmd.Flags().BoolVar(&skillPlanJSON, "json", false, "Print results as JSON")

	if err := skillPlanCmd.MarkFlagRequired("target"); err != nil {
		panic(fmt.Sprintf("failed to mark target flag as required: %v", err))
	}

	rootCmd.AddCommand(skillPlanCmd)
}

func runSkillPlan(_ *cobra.Command, _ []string) error {
	var skills []string
	if skillPlanSkills != "" {
		for _, s := range strings.Split(skillPlanSkills, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	} else {
		profile, err := loadProfile(skillPlanProfile)
		if err != nil {
			return err
		}
		skills = profile.Skills
	}

	plan, err := careers.NewRecommender(nil).SkillPlan(skills, skillPlanTarget)
	if err != nil {
		return err
	}

	if skillPlanJSON {
		return writeJSON("", plan)
	}

	observability.NewPrinter(os.Stdout).PrintSkillPlan(plan)
	return nil
}
