package services

import "alfredoptarigan/career-fit/internal/models"

const (
	hrShortlistPercent        = 75
	candidateExcellentPercent = 80
	candidateGoodPercent      = 60
)

// Classify maps a match score to a recommendation. Boundaries belong to the
// higher category. Unknown schemes fall back to the HR scheme.
func Classify(score models.MatchScore, scheme models.ThresholdScheme) models.Decision {
	pct := score.Percent()

	if scheme == models.SchemeCandidate {
		switch {
		case pct >= candidateExcellentPercent:
			return models.DecisionExcellent
		case pct >= candidateGoodPercent:
			return models.DecisionGood
		default:
			return models.DecisionNeedsImprovement
		}
	}

	if pct >= hrShortlistPercent {
		return models.DecisionShortlist
	}
	return models.DecisionReject
}

// Advice is the one-line hint shown to candidates next to their decision.
func Advice(decision models.Decision) string {
	switch decision {
	case models.DecisionExcellent:
		return "You're a strong candidate for this role!"
	case models.DecisionGood:
		return "You have potential, but consider addressing skill gaps."
	case models.DecisionNeedsImprovement:
		return "Significant skill development needed for this role."
	default:
		return ""
	}
}
