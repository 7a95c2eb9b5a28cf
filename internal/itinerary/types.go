package itinerary

import "trip-planner/internal/model"

const (
	DefaultMaxTextChars   = 20000
	DefaultMaxScreenshots = 10
	DefaultMaxImageBytes  = 10 << 20

	ItemStatusOK     = "ok"
	ItemStatusFailed = "failed"
)

// --- UseCase Inputs ---

type ParseInput struct {
	RawText      string
	Destination  *string
	DurationDays *int
	StartDate    string // YYYY-MM-DD or a relative expression; empty leaves dates unset
}

type WarningsInput struct {
	RawText string
	Days    []model.DayGroup
}

// Screenshot is one uploaded image.
type Screenshot struct {
	Filename string
	MimeType string
	Data     []byte
}

type ScreenshotsInput struct {
	Images       []Screenshot
	Destination  *string
	DurationDays *int
	StartDate    string
}

type URLInput struct {
	URL          string
	Destination  *string
	DurationDays *int
	StartDate    string
}

type CalendarInput struct {
	Days        []model.DayGroup
	StartDate   string
	Destination *string
}

// --- UseCase Outputs ---

type ScreenshotItem struct {
	Index      int
	Filename   string
	Status     string
	StatusCode int
	Error      string
	TextLength int
}

type ScreenshotsOutput struct {
	BatchID        string
	Status         model.BatchStatus
	ProcessedCount int
	FailedCount    int
	Items          []ScreenshotItem
	Result         *model.ParseResult // nil when no screenshot produced text
	Warnings       []string
}

type URLOutput struct {
	URL    string
	Title  string
	Result model.ParseResult
}

type CalendarEvent struct {
	DayIndex   int
	Label      string
	Date       string
	EventID    string
	Link       string
	Error      string
	StatusCode int
}

type CalendarOutput struct {
	Status       model.BatchStatus
	CreatedCount int
	FailedCount  int
	Events       []CalendarEvent
}
