package itinerary

import "errors"

var (
	ErrEmptyText             = errors.New("itinerary text is empty")
	ErrTextTooLong           = errors.New("itinerary text is too long")
	ErrInvalidStartDate      = errors.New("invalid start date")
	ErrNoImages              = errors.New("no screenshots provided")
	ErrTooManyImages         = errors.New("too many screenshots")
	ErrImageTooLarge         = errors.New("screenshot is too large")
	ErrUnsupportedImage      = errors.New("file is not an image")
	ErrInvalidURL            = errors.New("url must be an absolute http or https address")
	ErrUnsupportedPage       = errors.New("page is not HTML or plain text")
	ErrNoTextFound           = errors.New("no itinerary text found")
	ErrNoDays                = errors.New("no day groups to export")
	ErrAINotConfigured       = errors.New("text extraction is not configured")
	ErrCalendarNotConfigured = errors.New("calendar export is not configured")
	ErrProviderRateLimited   = errors.New("provider is rate limited, try again shortly")
	ErrProviderUnavailable   = errors.New("provider is unavailable")
	ErrUnreadableResponse    = errors.New("provider response could not be read")
)
