package parser

import (
	"regexp"
	"strings"
)

// LineKind is the classification of a single line of itinerary text.
type LineKind int

const (
	KindBlank LineKind = iota
	KindDayHeader
	KindMetaNoise
	KindPlace
)

func (k LineKind) String() string {
	switch k {
	case KindDayHeader:
		return "day-header"
	case KindMetaNoise:
		return "meta-noise"
	case KindPlace:
		return "place-candidate"
	default:
		return "blank"
	}
}

// Line is a classified line. For headers Text is the label and Tail holds any
// inline places written after a colon; for places Text is the name.
type Line struct {
	Kind     LineKind
	Text     string
	Tail     string
	TimeText *string
}

var (
	dayHeaderRe = regexp.MustCompile(
		`^(?:day\s*\d{1,3}(?:\b|\D|$)|day\s+(?:one|two|three|four|five|six|seven|eight|nine|ten)\b|day\s*:?$|ngày\s*\d{1,3}|第\s*[0-9一二三四五六七八九十]+\s*[天日])`)

	metaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^places? (?:from|in|on) my (?:itinerary|trip|list)`),
		regexp.MustCompile(`^i(?:'m| am|m) planning (?:a|an|my|our) (?:trip|vacation|holiday)`),
		regexp.MustCompile(`^we(?:'re| are) planning (?:a|an|our) (?:trip|vacation|holiday)`),
		regexp.MustCompile(`^(?:here is|here's|this is) (?:my|our) (?:itinerary|trip|plan)`),
		regexp.MustCompile(`^(?:my |our )?itinerary:?$`),
	}
	tripWordRe  = regexp.MustCompile(`\btrip\b`)
	dateRangeRe = regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:\s*-\s*\d{1,2}/\d{1,2})?\b`)
)

// Classify decides whether line is a day header, meta noise, a place candidate or blank.
func Classify(line string) Line {
	cleaned := cleanLine(line)
	if cleaned == "" {
		return Line{Kind: KindBlank}
	}

	norm := normalizeKey(cleaned)
	if dayHeaderRe.MatchString(norm) {
		label, tail := splitHeader(cleaned)
		return Line{Kind: KindDayHeader, Text: label, Tail: tail}
	}

	if IsMetaNoise(norm) {
		return Line{Kind: KindMetaNoise, Text: cleaned}
	}

	name, timeText := SplitTimePrefix(cleaned)
	return Line{Kind: KindPlace, Text: name, TimeText: timeText}
}

// IsMetaNoise reports whether a normalized line is itinerary boilerplate.
func IsMetaNoise(norm string) bool {
	for _, re := range metaPatterns {
		if re.MatchString(norm) {
			return true
		}
	}
	return tripWordRe.MatchString(norm) && dateRangeRe.MatchString(norm)
}

// splitHeader separates "Day 1: A, B" into the label and the inline tail.
func splitHeader(cleaned string) (string, string) {
	label, tail := cleaned, ""
	if i := headerColon(cleaned); i > 0 {
		label, tail = cleaned[:i], cleaned[i:]
		tail = strings.TrimLeft(tail, ":：")
	}
	label = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(label), ":：-–—"))
	if label == "" {
		label = cleaned
	}
	return label, strings.TrimSpace(tail)
}

// headerColon returns the byte index of the first colon that is not part of a
// clock token like 10:30, or -1.
func headerColon(s string) int {
	for i, r := range s {
		if r != ':' && r != '：' {
			continue
		}
		if r == ':' && i > 0 && i+1 < len(s) && isDigit(s[i-1]) && isDigit(s[i+1]) {
			continue
		}
		return i
	}
	return -1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
