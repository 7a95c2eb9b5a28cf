package parser

import (
	"regexp"
	"strconv"
	"strings"

	"trip-planner/internal/model"
)

const listSeparators = ",;、，；"

var (
	daySpanRe = regexp.MustCompile(
		`(?i)(?:^|\s)(\d{1,3}|a\s+few|few|several|some)?\s*-?\s*days?\s+(?:in|to|at|around|across|through)\s+(.+)$`)
	trailingAndRe = regexp.MustCompile(`(?i)\s+(?:and|&)\s+`)
	leadingAndRe  = regexp.MustCompile(`(?i)^(?:and|&)\s+`)
)

type daySpan struct {
	days   int
	places []model.ParsedPlace
}

// matchDaySpan recognizes "<N> days in X, Y, Z" style single-line input.
// The day count falls back to durationHint, then 1, and is clamped to
// [1, MaxSynthesizedDays].
func matchDaySpan(line string, durationHint *int) (daySpan, bool) {
	m := daySpanRe.FindStringSubmatch(line)
	if m == nil {
		return daySpan{}, false
	}

	tail := m[2]
	if i := strings.IndexAny(tail, ":："); i >= 0 {
		// "3 days in Tokyo: A, B" names the city before the colon
		tail = tail[i+1:]
	}
	if !strings.ContainsAny(tail, listSeparators) {
		return daySpan{}, false
	}

	n := 0
	if v, err := strconv.Atoi(m[1]); err == nil {
		n = v
	} else if durationHint != nil {
		n = *durationHint
	}
	n = max(1, min(n, MaxSynthesizedDays))

	places := splitList(tail)
	if len(places) == 0 {
		return daySpan{}, false
	}
	return daySpan{days: n, places: places}, true
}

// distribute splits places into n contiguous day groups in global order.
// The first len(places) mod n days receive one extra place.
func distribute(places []model.ParsedPlace, n int) []model.DayGroup {
	days := make([]model.DayGroup, n)
	base, extra := len(places)/n, len(places)%n
	next := 0
	for i := range days {
		size := base
		if i < extra {
			size++
		}
		group := make([]model.ParsedPlace, 0, size)
		group = append(group, places[next:next+size]...)
		next += size
		days[i] = model.DayGroup{Label: dayLabel(i + 1), Places: group}
	}
	return days
}

// splitList splits a comma-style list into places. Meta-noise and empty
// items are skipped, and an "and" joining the last two items is split too.
func splitList(s string) []model.ParsedPlace {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	items := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(listSeparators, r)
	})
	if len(items) > 1 {
		last := items[len(items)-1]
		if parts := trailingAndRe.Split(strings.TrimSpace(last), -1); len(parts) == 2 {
			items = append(items[:len(items)-1], parts...)
		}
	}

	places := make([]model.ParsedPlace, 0, len(items))
	for _, item := range items {
		item = leadingAndRe.ReplaceAllString(strings.TrimSpace(item), "")
		item = strings.TrimRight(item, ".。")
		line := Classify(item)
		if line.Kind != KindPlace {
			continue
		}
		places = append(places, newPlace(line))
	}
	return places
}
