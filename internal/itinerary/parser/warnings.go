package parser

import (
	"regexp"
	"strings"

	"trip-planner/internal/model"
)

const (
	WarningDuplicatePlaceNames = "DUPLICATE_PLACE_NAMES"
	WarningAmbiguousText       = "AMBIGUOUS_TEXT_DETECTED"
	WarningNoPlacesFound       = "NO_PLACES_FOUND"
	WarningEmptyDayGroups      = "EMPTY_DAY_GROUPS"
	WarningDurationMismatch    = "DURATION_MISMATCH"
)

var ambiguousWordRe = regexp.MustCompile(`(?i)\b(?:tbd|unknown|maybe)\b`)

// DetectWarnings flags duplicate place names and ambiguous wording. Each
// warning appears at most once, in order of first detection.
func DetectWarnings(rawText string, days []model.DayGroup) []string {
	warnings := []string{}

	if hasDuplicateNames(days) {
		warnings = append(warnings, WarningDuplicatePlaceNames)
	}
	if strings.ContainsAny(rawText, "?？") || ambiguousWordRe.MatchString(rawText) {
		warnings = append(warnings, WarningAmbiguousText)
	}
	return warnings
}

func hasDuplicateNames(days []model.DayGroup) bool {
	seen := make(map[string]struct{})
	for _, d := range days {
		for _, p := range d.Places {
			key := normalizeKey(p.Name)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				return true
			}
			seen[key] = struct{}{}
		}
	}
	return false
}

func structuralWarnings(r model.ParseResult, headers int, opts Options) []string {
	var warnings []string
	if r.PlaceCount() == 0 {
		return append(warnings, WarningNoPlacesFound)
	}
	for _, d := range r.Days {
		if len(d.Places) == 0 && headers > 0 {
			warnings = append(warnings, WarningEmptyDayGroups)
			break
		}
	}
	if opts.DurationDays != nil && headers > 0 && *opts.DurationDays != len(r.Days) {
		warnings = append(warnings, WarningDurationMismatch)
	}
	return warnings
}

// MergeWarnings concatenates warning lists, dropping repeats.
func MergeWarnings(lists ...[]string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, w := range list {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}
