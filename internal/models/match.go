package models

import (
	"fmt"
	"math"
)

// MatchScore is the resume/job similarity clamped to [0, 1].
type MatchScore float64

// NewMatchScore clamps a raw cosine similarity into [0, 1].
func NewMatchScore(cosine float64) MatchScore {
	switch {
	case math.IsNaN(cosine), cosine < 0:
		return 0
	case cosine > 1:
		return 1
	}
	return MatchScore(cosine)
}

func (s MatchScore) Percent() float64 {
	return float64(s) * 100
}

// String formats the score the way the assistant context embeds it.
func (s MatchScore) String() string {
	return fmt.Sprintf("%.2f%%", s.Percent())
}

type ThresholdScheme string

const (
	SchemeHR        ThresholdScheme = "hr"
	SchemeCandidate ThresholdScheme = "candidate"
)

type Decision string

const (
	DecisionShortlist        Decision = "Shortlist"
	DecisionReject           Decision = "Reject"
	DecisionExcellent        Decision = "Excellent"
	DecisionGood             Decision = "Good"
	DecisionNeedsImprovement Decision = "Needs Improvement"
)
