package itinerary

import (
	"context"

	"trip-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse turns raw itinerary text into day groups of place candidates.
	Parse(ctx context.Context, input ParseInput) (model.ParseResult, error)

	// DetectWarnings re-runs the review checks on text and (possibly edited) day groups.
	DetectWarnings(ctx context.Context, input WarningsInput) ([]string, error)

	// ImportScreenshots transcribes screenshots one at a time and parses the combined text.
	ImportScreenshots(ctx context.Context, input ScreenshotsInput) (ScreenshotsOutput, error)

	// ImportURL fetches a web page, extracts its itinerary and parses it.
	ImportURL(ctx context.Context, input URLInput) (URLOutput, error)

	// ExportCalendar writes one all-day event per non-empty day group.
	ExportCalendar(ctx context.Context, input CalendarInput) (CalendarOutput, error)
}
