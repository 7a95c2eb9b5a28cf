package parser

import (
	"fmt"
	"strings"

	"trip-planner/internal/model"
)

const (
	// previewPlacesPerDay caps how many places each day shows in PreviewText.
	previewPlacesPerDay = 3
	// MaxSynthesizedDays bounds the day count taken from "N days in ..." text.
	MaxSynthesizedDays = 30
)

// Options carries the caller's optional hints.
type Options struct {
	Destination  *string
	DurationDays *int
}

// Parse turns raw itinerary text into ordered day groups of place candidates.
// It is deterministic and performs no I/O.
func Parse(rawText string, opts Options) model.ParseResult {
	lines := splitLines(rawText)

	var (
		days    []model.DayGroup
		headers int
	)
	if single, ok := singleLine(lines); ok {
		days, headers = parseSingleLine(single, opts)
	} else {
		days, headers = parseLines(lines)
	}

	result := model.ParseResult{
		CleanedRequest: BuildCleanedRequest(days),
		PreviewText:    BuildPreviewText(days),
		Destination:    opts.Destination,
		Days:           days,
	}
	result.Warnings = MergeWarnings(structuralWarnings(result, headers, opts), DetectWarnings(rawText, days))
	return result
}

func parseLines(lines []string) ([]model.DayGroup, int) {
	var (
		days    []model.DayGroup
		pending []model.ParsedPlace
		headers int
	)

	for _, raw := range lines {
		line := Classify(raw)
		switch line.Kind {
		case KindDayHeader:
			headers++
			group := model.DayGroup{Label: line.Text, Places: []model.ParsedPlace{}}
			if headers == 1 {
				// places written before the first header belong to it
				group.Places = append(group.Places, pending...)
				pending = nil
			}
			group.Places = append(group.Places, splitList(line.Tail)...)
			days = append(days, group)
		case KindPlace:
			place := newPlace(line)
			if headers == 0 {
				pending = append(pending, place)
				continue
			}
			last := &days[len(days)-1]
			last.Places = append(last.Places, place)
		}
	}

	if headers == 0 {
		days = []model.DayGroup{headerless(pending)}
	}
	return days, headers
}

func parseSingleLine(line string, opts Options) ([]model.DayGroup, int) {
	classified := Classify(line)
	switch classified.Kind {
	case KindDayHeader:
		return parseLines([]string{line})
	case KindBlank:
		return []model.DayGroup{headerless(nil)}, 0
	}

	if span, ok := matchDaySpan(cleanLine(line), opts.DurationDays); ok {
		return distribute(span.places, span.days), 0
	}

	if classified.Kind == KindMetaNoise {
		return []model.DayGroup{headerless(nil)}, 0
	}

	cleaned := cleanLine(line)
	if strings.ContainsAny(cleaned, listSeparators) {
		return []model.DayGroup{headerless(splitList(cleaned))}, 0
	}
	return []model.DayGroup{headerless([]model.ParsedPlace{newPlace(classified)})}, 0
}

func headerless(places []model.ParsedPlace) model.DayGroup {
	if places == nil {
		places = []model.ParsedPlace{}
	}
	return model.DayGroup{Label: dayLabel(1), Places: places}
}

func dayLabel(n int) string {
	return fmt.Sprintf("Day %d", n)
}

func newPlace(line Line) model.ParsedPlace {
	return model.ParsedPlace{
		Name:     line.Text,
		Source:   model.PlaceSourceUser,
		TimeText: line.TimeText,
	}
}

func splitLines(rawText string) []string {
	s := strings.ReplaceAll(rawText, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\u2028", "\n")
	return strings.Split(s, "\n")
}

// singleLine returns the only non-blank line when the input has no line breaks
// between content.
func singleLine(lines []string) (string, bool) {
	var found string
	count := 0
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		count++
		found = l
	}
	return found, count == 1
}

// BuildCleanedRequest renders "Label: place, place" per non-empty day group.
func BuildCleanedRequest(days []model.DayGroup) string {
	var rows []string
	for _, d := range days {
		if len(d.Places) == 0 {
			continue
		}
		names := make([]string, len(d.Places))
		for i, p := range d.Places {
			names[i] = placeWithTime(p)
		}
		rows = append(rows, d.Label+": "+strings.Join(names, ", "))
	}
	return strings.Join(rows, "\n")
}

// BuildPreviewText renders the first few places of each non-empty day.
func BuildPreviewText(days []model.DayGroup) string {
	var rows []string
	for _, d := range days {
		if len(d.Places) == 0 {
			continue
		}
		n := min(len(d.Places), previewPlacesPerDay)
		names := make([]string, n)
		for i := range n {
			names[i] = d.Places[i].Name
		}
		row := d.Label + ": " + strings.Join(names, ", ")
		if extra := len(d.Places) - n; extra > 0 {
			row += fmt.Sprintf(" +%d more", extra)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func placeWithTime(p model.ParsedPlace) string {
	if p.TimeText == nil || *p.TimeText == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, *p.TimeText)
}
