package gcalendar

import "time"

// AllDayEventRequest is the input for creating an all-day event.
type AllDayEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	Date        time.Time // only the calendar date is used
}

// Event is a simplified representation of a created event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Date     string
}
