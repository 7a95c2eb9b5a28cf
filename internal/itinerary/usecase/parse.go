package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"trip-planner/internal/itinerary"
	"trip-planner/internal/itinerary/parser"
	"trip-planner/internal/model"
	"trip-planner/pkg/datemath"
	"trip-planner/pkg/metrics"
)

func (uc *implUseCase) Parse(ctx context.Context, input itinerary.ParseInput) (model.ParseResult, error) {
	return uc.parse(ctx, input, sourceText)
}

func (uc *implUseCase) parse(ctx context.Context, input itinerary.ParseInput, source string) (model.ParseResult, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return model.ParseResult{}, itinerary.ErrEmptyText
	}
	if utf8.RuneCountInString(input.RawText) > uc.opts.MaxTextChars {
		return model.ParseResult{}, itinerary.ErrTextTooLong
	}

	start, err := uc.startDate(input.StartDate)
	if err != nil {
		return model.ParseResult{}, err
	}

	result := parser.Parse(input.RawText, parser.Options{
		Destination:  presentHint(input.Destination),
		DurationDays: input.DurationDays,
	})
	assignDates(result.Days, start)

	metrics.ItineraryParses.WithLabelValues(source).Inc()
	for _, w := range result.Warnings {
		metrics.ParseWarnings.WithLabelValues(w).Inc()
	}
	uc.l.Debugf(ctx, "itinerary.usecase.parse: source=%s days=%d places=%d warnings=%v",
		source, len(result.Days), result.PlaceCount(), result.Warnings)

	return result, nil
}

func (uc *implUseCase) DetectWarnings(ctx context.Context, input itinerary.WarningsInput) ([]string, error) {
	if utf8.RuneCountInString(input.RawText) > uc.opts.MaxTextChars {
		return nil, itinerary.ErrTextTooLong
	}
	return parser.DetectWarnings(input.RawText, input.Days), nil
}

// assignDates sets consecutive dates on days when start is set.
func assignDates(days []model.DayGroup, start time.Time) {
	if start.IsZero() {
		return
	}
	for i, date := range datemath.DayDates(start, len(days)) {
		days[i].Date = &date
	}
}
