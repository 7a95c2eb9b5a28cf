package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	clockRe    = regexp.MustCompile(`^(\d{1,2})(?::([0-5]\d))?(?:(\s?)([aApP]\.?[mM]\.?))?`)
	rangeSepRe = regexp.MustCompile(`^\s*(?:-|–|—|~|\bto\b)\s*`)
	separators = "-–—:|@·>,"
)

type clockToken struct {
	text     string
	minutes  bool
	meridiem bool
}

// scanClock reads a leading clock token such as 9am, 7:30 AM, 11:11 or 7AM.
// A bare number is not a clock.
func scanClock(s string) (clockToken, bool) {
	m := clockRe.FindStringSubmatchIndex(s)
	if m == nil {
		return clockToken{}, false
	}

	end := m[1]
	hasMinutes := m[4] >= 0
	hasMeridiem := m[8] >= 0
	if hasMeridiem && !wordBoundary(s, end) {
		// "7 Amsterdam": the meridiem was the start of a word
		end = m[6]
		hasMeridiem = false
	}
	if !hasMinutes && !hasMeridiem {
		return clockToken{}, false
	}
	if !wordBoundary(s, end) {
		return clockToken{}, false
	}

	hour, _ := strconv.Atoi(s[m[2]:m[3]])
	if hasMeridiem && (hour < 1 || hour > 12) {
		return clockToken{}, false
	}
	if hour > 24 {
		return clockToken{}, false
	}

	return clockToken{text: s[:end], minutes: hasMinutes, meridiem: hasMeridiem}, true
}

// SplitTimePrefix separates a leading clock token from a place name.
//
// Rules, first match wins:
//  1. nothing left after the token: keep the line as the name
//  2. an explicit separator follows the token (9am - Senso-ji): strip
//  3. the token is a range (09:00-11:00) or a full h:mm am/pm: strip
//  4. the remainder starts with a lowercase or uncased letter (9am coffee): strip
//  5. otherwise the token is part of the name (7AM Cafe, 11:11 Coffee): keep
func SplitTimePrefix(line string) (string, *string) {
	first, ok := scanClock(line)
	if !ok {
		return line, nil
	}

	end := len(first.text)
	isRange := false
	if m := rangeSepRe.FindStringIndex(line[end:]); m != nil {
		if second, ok := scanClock(line[end+m[1]:]); ok {
			end += m[1] + len(second.text)
			isRange = true
		}
	}

	rest := strings.TrimLeftFunc(line[end:], unicode.IsSpace)
	hasSeparator := false
	if r, size := utf8.DecodeRuneInString(rest); size > 0 && strings.ContainsRune(separators, r) {
		hasSeparator = true
		rest = strings.TrimLeftFunc(rest[size:], unicode.IsSpace)
	}

	if rest == "" {
		return line, nil
	}

	strip := hasSeparator ||
		isRange ||
		(first.minutes && first.meridiem) ||
		startsLowercase(rest)
	if !strip {
		return line, nil
	}

	timeText := strings.TrimSpace(line[:end])
	return rest, &timeText
}

func startsLowercase(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r) && !unicode.IsUpper(r) && !unicode.IsTitle(r)
}

func wordBoundary(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
