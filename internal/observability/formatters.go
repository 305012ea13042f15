// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Sakib9797/Hire-Skill/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the default number of skills to display in lists
	maxSkillsToShow = 5
)

// Printer handles formatted result output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecommendations outputs the ranked career recommendations.
func (p *Printer) PrintRecommendations(recs []types.CareerRecommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, rec.Role, rec.Category))
		sb.WriteString(fmt.Sprintf("    Match: %.2f  Similarity: %.2f\n", rec.MatchScore, rec.SimilarityScore))
		sb.WriteString(fmt.Sprintf("    Skills covered: %.1f%%  Salary: %s\n",
			rec.SkillMatchPercentage, rec.AverageSalary))
		if len(rec.SkillGaps.MissingRequired) > 0 {
			sb.WriteString("    To learn: " + joinCapped(rec.SkillGaps.MissingRequired, maxSkillsToShow) + "\n")
		}
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CAREER RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobMatches outputs the ranked job matches.
func (p *Printer) PrintJobMatches(matches []types.JobMatch) {
	if len(matches) == 0 {
		p.printBox("JOB MATCHES", "No postings matched the given filters.")
		return
	}

	var sb strings.Builder
	for i, match := range matches {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, match.Title))
		sb.WriteString("    " + match.Company)
		if match.Location != "" {
			sb.WriteString("  " + match.Location)
		}
		if match.WorkType != "" {
			sb.WriteString("  (" + match.WorkType + ")")
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", match.MatchScore))
		if len(match.SkillsRequired) > 0 {
			sb.WriteString("    Skills: " + joinCapped(match.SkillsRequired, maxSkillsToShow) + "\n")
		}
		if i < len(matches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("JOB MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExplanation outputs the breakdown for a single profile/job pair.
func (p *Printer) PrintExplanation(job *types.Job, explanation *types.MatchExplanation) {
	if job == nil || explanation == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Posting:  %s\n\n", job.Title))

	if len(explanation.MatchedSkills) > 0 {
		sb.WriteString("Matched skills: " + joinCapped(explanation.MatchedSkills, maxSkillsToShow) + "\n")
	}
	if len(explanation.MissingSkills) > 0 {
		sb.WriteString("Missing skills: " + joinCapped(explanation.MissingSkills, maxSkillsToShow) + "\n")
	}
	sb.WriteString(fmt.Sprintf("Experience bracket: %s\n", yesNo(explanation.ExperienceMatch)))
	sb.WriteString(fmt.Sprintf("Title match:        %s", yesNo(explanation.TitleMatch)))

	p.printBox("MATCH EXPLANATION", sb.String())
}

// PrintSkillPlan outputs the learning path toward a target career.
func (p *Printer) PrintSkillPlan(plan *types.SkillPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target:         %s (%s)\n", plan.Career, plan.Category))
	sb.WriteString(fmt.Sprintf("Current match:  %s\n", plan.CurrentMatch))
	sb.WriteString(fmt.Sprintf("Time to ready:  %s\n", plan.EstimatedTimeToReady))

	if len(plan.SkillsYouHave) > 0 {
		sb.WriteString("\nYou have: " + joinCapped(plan.SkillsYouHave, maxSkillsToShow) + "\n")
	}

	for _, phase := range plan.LearningPath {
		sb.WriteString(fmt.Sprintf("\n%s [%s priority, %s]\n", phase.Phase, phase.Priority, phase.Timeline))
		for _, skill := range phase.Skills {
			sb.WriteString("  • " + skill + "\n")
		}
	}

	p.printBox("SKILL PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// joinCapped joins up to max items, noting how many were elided.
func joinCapped(items []string, max int) string {
	if len(items) <= max {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s ... and %d more", strings.Join(items[:max], ", "), len(items)-max)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
