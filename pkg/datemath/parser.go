package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var (
	ErrEmptyDate   = errors.New("date is empty")
	ErrInvalidDate = errors.New("date is not YYYY-MM-DD or a known relative expression")

	inDurationRe = regexp.MustCompile(`^in (\d{1,3}) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser resolves trip start dates in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a Parser for an IANA timezone such as "Asia/Tokyo".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseStartDate accepts YYYY-MM-DD or one of: today, tomorrow,
// "in N days|weeks|months", "next <weekday>". Relative forms count from base.
func (p *Parser) ParseStartDate(value string, base time.Time) (time.Time, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return time.Time{}, ErrEmptyDate
	}

	if t, err := time.ParseInLocation(DateLayout, value, p.location); err == nil {
		return t, nil
	}

	switch value {
	case "today":
		return p.startOfDay(base), nil
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), nil
	}

	if m := inDurationRe.FindStringSubmatch(value); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "day"):
			return p.startOfDay(base.AddDate(0, 0, n)), nil
		case strings.HasPrefix(m[2], "week"):
			return p.startOfDay(base.AddDate(0, 0, 7*n)), nil
		default:
			return p.startOfDay(base.AddDate(0, n, 0)), nil
		}
	}

	if name, ok := strings.CutPrefix(value, "next "); ok {
		target, known := weekdays[name]
		if !known {
			return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidDate, name)
		}
		ahead := int(target - base.In(p.location).Weekday())
		if ahead <= 0 {
			ahead += 7
		}
		return p.startOfDay(base.AddDate(0, 0, ahead)), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// DayDates returns n consecutive dates starting at start, formatted as YYYY-MM-DD.
func DayDates(start time.Time, n int) []string {
	if n <= 0 {
		return []string{}
	}
	dates := make([]string, n)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i).Format(DateLayout)
	}
	return dates
}
