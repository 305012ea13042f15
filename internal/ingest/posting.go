package ingest

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// ParsePosting turns a fetched page into a Job document. Skill extraction
// scans the page text against the given vocabulary (typically the career
// catalog's skill list), so the resulting posting is immediately matchable.
func ParsePosting(page *Page, skillVocabulary []string) *types.Job {
	text := page.Text
	lower := strings.ToLower(text)

	job := &types.Job{
		ID:              uuid.NewString(),
		Title:           page.Title,
		Location:        detectLocation(lower),
		WorkType:        detectWorkType(lower),
		ExperienceLevel: guessLevel(page.Title),
		SkillsRequired:  scanSkills(lower, skillVocabulary),
		Description:     text,
		PostedDate:      time.Now().UTC().Format("2006-01-02"),
		URL:             page.URL,
	}
	job.Normalize()
	return job
}

// scanSkills returns the vocabulary entries mentioned in the posting text,
// preserving vocabulary casing.
func scanSkills(lowerText string, vocabulary []string) []string {
	var found []string
	for _, skill := range vocabulary {
		if containsToken(lowerText, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

// containsToken is a substring match guarded against matching inside a
// longer word, so "r" or "go" do not fire on every posting.
func containsToken(text, token string) bool {
	if token == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(text[start:], token)
		if i < 0 {
			return false
		}
		i += start
		before := i == 0 || !isWordByte(text[i-1])
		afterIdx := i + len(token)
		after := afterIdx >= len(text) || !isWordByte(text[afterIdx])
		if before && after {
			return true
		}
		start = i + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// guessLevel infers the experience bracket from title keywords.
func guessLevel(title string) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "senior") || strings.Contains(lower, "staff") ||
		strings.Contains(lower, "principal") || strings.Contains(lower, "lead"):
		return "Senior"
	case strings.Contains(lower, "junior") || strings.Contains(lower, "intern") ||
		strings.Contains(lower, "entry"):
		return "Entry"
	case lower == "":
		return ""
	default:
		return "Mid"
	}
}

// detectWorkType spots remote and hybrid mentions in the posting text.
func detectWorkType(lowerText string) string {
	switch {
	case strings.Contains(lowerText, "hybrid"):
		return "Hybrid"
	case strings.Contains(lowerText, "remote"):
		return "Remote"
	default:
		return "On-site"
	}
}

// knownCities covers the metro names that show up on the sample boards.
// Real postings outside this list simply get an empty location.
var knownCities = []string{
	"San Francisco, CA", "New York, NY", "Seattle, WA", "Austin, TX",
	"Boston, MA", "Chicago, IL", "Los Angeles, CA", "Denver, CO",
}

func detectLocation(lowerText string) string {
	for _, city := range knownCities {
		if strings.Contains(lowerText, strings.ToLower(city)) {
			return city
		}
		// Postings often name just the city without the state suffix.
		name := strings.ToLower(city[:strings.Index(city, ",")])
		if strings.Contains(lowerText, name) {
			return city
		}
	}
	if strings.Contains(lowerText, "remote") {
		return "Remote"
	}
	return ""
}
