package usecase

import (
	"context"
	"time"

	"trip-planner/internal/itinerary"
	"trip-planner/pkg/datemath"
	"trip-planner/pkg/gcalendar"
	"trip-planner/pkg/gemini"
	"trip-planner/pkg/log"
	"trip-planner/pkg/webtext"
)

// PageFetcher downloads a page as readable text.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (webtext.Page, error)
}

// CalendarWriter creates calendar events.
type CalendarWriter interface {
	CreateAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error)
}

// Options holds limits and calendar settings. Zero values use the itinerary defaults.
type Options struct {
	CalendarID        string
	MaxTextChars      int
	MaxScreenshots    int
	MaxImageBytes     int
	MaxImageDimension int
}

type implUseCase struct {
	l        log.Logger
	llm      gemini.Generator
	fetcher  PageFetcher
	calendar CalendarWriter
	dates    *datemath.Parser
	opts     Options
	now      func() time.Time
}

// New creates an itinerary UseCase. llm and calendar may be nil, in which case
// the features that need them report ErrAINotConfigured and
// ErrCalendarNotConfigured.
func New(
	l log.Logger,
	llm gemini.Generator,
	fetcher PageFetcher,
	calendar CalendarWriter,
	dates *datemath.Parser,
	opts Options,
) *implUseCase {
	if opts.MaxTextChars <= 0 {
		opts.MaxTextChars = itinerary.DefaultMaxTextChars
	}
	if opts.MaxScreenshots <= 0 {
		opts.MaxScreenshots = itinerary.DefaultMaxScreenshots
	}
	if opts.MaxImageBytes <= 0 {
		opts.MaxImageBytes = itinerary.DefaultMaxImageBytes
	}
	return &implUseCase{
		l:        l,
		llm:      llm,
		fetcher:  fetcher,
		calendar: calendar,
		dates:    dates,
		opts:     opts,
		now:      time.Now,
	}
}
