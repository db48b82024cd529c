package models

import (
	"fmt"
	"strings"
)

// CandidateRecord is the normalized result of parsing one resume.
// It is never mutated after extraction.
type CandidateRecord struct {
	Name                 string   `json:"name"`
	Skills               []string `json:"skills"`
	Experience           string   `json:"experience"`
	TotalExperienceYears float64  `json:"total_experience_years"`
	PageCount            int      `json:"page_count"`
	FullText             string   `json:"full_text"`
	ExtractionError      string   `json:"extraction_error,omitempty"`
}

// EmptyCandidate returns a defaulted record carrying the extraction failure.
func EmptyCandidate(reason string) CandidateRecord {
	return CandidateRecord{
		Skills:          []string{},
		ExtractionError: reason,
	}
}

func (c CandidateRecord) Failed() bool {
	return c.ExtractionError != ""
}

// BuildFullText is the similarity input: name, skills and experience joined
// by single spaces. Blank parts are skipped so an empty record yields "".
func BuildFullText(name string, skills []string, experience string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{name, strings.Join(skills, " "), experience} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

const keySkillsLimit = 100

// CandidateSummary is the short card shown next to the match score.
type CandidateSummary struct {
	Name       string `json:"name"`
	Experience string `json:"experience"`
	Pages      int    `json:"pages"`
	KeySkills  string `json:"key_skills"`
}

func (c CandidateRecord) Summary() CandidateSummary {
	name := c.Name
	if name == "" {
		name = "Not extracted"
	}

	skills := strings.Join(c.Skills, ", ")
	if runes := []rune(skills); len(runes) > keySkillsLimit {
		skills = string(runes[:keySkillsLimit]) + "..."
	}

	return CandidateSummary{
		Name:       name,
		Experience: fmt.Sprintf("%s years", FormatYears(c.TotalExperienceYears)),
		Pages:      c.PageCount,
		KeySkills:  skills,
	}
}

// FormatYears renders whole years without a fractional part.
func FormatYears(years float64) string {
	if years == float64(int64(years)) {
		return fmt.Sprintf("%d", int64(years))
	}
	return fmt.Sprintf("%.1f", years)
}
