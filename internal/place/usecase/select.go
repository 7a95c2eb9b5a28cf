package usecase

import (
	"strings"

	"trip-planner/internal/model"
)

// selectBest picks one candidate. A destination match wins; otherwise the
// provider's first candidate is kept as a best guess.
func selectBest(candidates []model.PlaceCandidate, destination string) model.PlaceCandidate {
	dest := normalize(destination)

	if len(candidates) == 1 {
		return withConfidence(candidates[0], model.ConfidenceHigh)
	}
	if dest != "" {
		for _, c := range candidates {
			if mentions(c, dest) {
				return withConfidence(c, model.ConfidenceHigh)
			}
		}
		return withConfidence(candidates[0], model.ConfidenceLow)
	}
	return withConfidence(candidates[0], model.ConfidenceMedium)
}

// rank orders candidates with destination matches first, keeping provider
// order within each group, and grades each one.
func rank(candidates []model.PlaceCandidate, destination string) []model.PlaceCandidate {
	dest := normalize(destination)

	matched := make([]model.PlaceCandidate, 0, len(candidates))
	rest := make([]model.PlaceCandidate, 0, len(candidates))
	for _, c := range candidates {
		switch {
		case dest != "" && mentions(c, dest):
			matched = append(matched, withConfidence(c, model.ConfidenceHigh))
		case len(candidates) == 1:
			rest = append(rest, withConfidence(c, model.ConfidenceHigh))
		case dest != "":
			rest = append(rest, withConfidence(c, model.ConfidenceLow))
		default:
			rest = append(rest, withConfidence(c, model.ConfidenceMedium))
		}
	}
	return append(matched, rest...)
}

func withConfidence(c model.PlaceCandidate, confidence model.Confidence) model.PlaceCandidate {
	c.Confidence = confidence
	c.BestGuess = confidence != model.ConfidenceHigh
	return c
}

// mentions reports whether the formatted address or display name contains dest.
func mentions(c model.PlaceCandidate, dest string) bool {
	for _, field := range []*string{c.FormattedAddress, c.DisplayName} {
		if field != nil && strings.Contains(normalize(*field), dest) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
