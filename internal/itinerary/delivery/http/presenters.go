package http

import (
	"strings"

	"trip-planner/internal/itinerary"
	"trip-planner/internal/model"
)

// --- Request DTOs ---

type parseReq struct {
	RawText      string  `json:"rawText"      binding:"required"`
	Destination  *string `json:"destination"  binding:"omitempty,max=200"`
	DurationDays *int    `json:"durationDays" binding:"omitempty,min=1,max=30"`
	StartDate    string  `json:"startDate"    binding:"max=40"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.RawText) == "" {
		return itinerary.ErrEmptyText
	}
	return nil
}

func (r parseReq) toInput() itinerary.ParseInput {
	return itinerary.ParseInput{
		RawText:      r.RawText,
		Destination:  r.Destination,
		DurationDays: r.DurationDays,
		StartDate:    r.StartDate,
	}
}

// ---

type warningsReq struct {
	RawText string           `json:"rawText"`
	Days    []model.DayGroup `json:"days"`
}

func (r warningsReq) toInput() itinerary.WarningsInput {
	return itinerary.WarningsInput{RawText: r.RawText, Days: r.Days}
}

// ---

// screenshotsForm holds the non-file fields of the multipart upload.
type screenshotsForm struct {
	Destination  string `form:"destination"  binding:"max=200"`
	DurationDays int    `form:"durationDays" binding:"omitempty,min=1,max=30"`
	StartDate    string `form:"startDate"    binding:"max=40"`
}

func (r screenshotsForm) toInput(images []itinerary.Screenshot) itinerary.ScreenshotsInput {
	in := itinerary.ScreenshotsInput{Images: images, StartDate: r.StartDate}
	if strings.TrimSpace(r.Destination) != "" {
		in.Destination = &r.Destination
	}
	if r.DurationDays > 0 {
		in.DurationDays = &r.DurationDays
	}
	return in
}

// ---

type urlReq struct {
	URL          string  `json:"url"          binding:"required,max=2048"`
	Destination  *string `json:"destination"  binding:"omitempty,max=200"`
	DurationDays *int    `json:"durationDays" binding:"omitempty,min=1,max=30"`
	StartDate    string  `json:"startDate"    binding:"max=40"`
}

func (r urlReq) toInput() itinerary.URLInput {
	return itinerary.URLInput{
		URL:          r.URL,
		Destination:  r.Destination,
		DurationDays: r.DurationDays,
		StartDate:    r.StartDate,
	}
}

// ---

type calendarReq struct {
	Days        []model.DayGroup `json:"days"        binding:"required"`
	StartDate   string           `json:"startDate"   binding:"required,max=40"`
	Destination *string          `json:"destination" binding:"omitempty,max=200"`
}

func (r calendarReq) validate() error {
	if len(r.Days) == 0 {
		return itinerary.ErrNoDays
	}
	return nil
}

func (r calendarReq) toInput() itinerary.CalendarInput {
	return itinerary.CalendarInput{Days: r.Days, StartDate: r.StartDate, Destination: r.Destination}
}

// --- Response DTOs ---

type warningsResp struct {
	Warnings []string `json:"warnings"`
}

type screenshotItemResp struct {
	Index      int     `json:"index"`
	Filename   string  `json:"filename"`
	Status     string  `json:"status"`
	StatusCode int     `json:"statusCode"`
	Error      *string `json:"error"`
	TextLength int     `json:"textLength"`
}

type screenshotsResp struct {
	BatchID        string               `json:"batchId"`
	Status         model.BatchStatus    `json:"status"`
	ProcessedCount int                  `json:"processedCount"`
	FailedCount    int                  `json:"failedCount"`
	Items          []screenshotItemResp `json:"items"`
	Result         *model.ParseResult   `json:"result"`
	Warnings       []string             `json:"warnings"`
}

func (h *handler) newScreenshotsResp(o itinerary.ScreenshotsOutput) screenshotsResp {
	items := make([]screenshotItemResp, len(o.Items))
	for i, it := range o.Items {
		items[i] = screenshotItemResp{
			Index:      it.Index,
			Filename:   it.Filename,
			Status:     it.Status,
			StatusCode: it.StatusCode,
			Error:      optional(it.Error),
			TextLength: it.TextLength,
		}
	}
	warnings := o.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return screenshotsResp{
		BatchID:        o.BatchID,
		Status:         o.Status,
		ProcessedCount: o.ProcessedCount,
		FailedCount:    o.FailedCount,
		Items:          items,
		Result:         o.Result,
		Warnings:       warnings,
	}
}

type urlResp struct {
	URL    string            `json:"url"`
	Title  string            `json:"title"`
	Result model.ParseResult `json:"result"`
}

func (h *handler) newURLResp(o itinerary.URLOutput) urlResp {
	return urlResp{URL: o.URL, Title: o.Title, Result: o.Result}
}

type calendarEventResp struct {
	DayIndex   int     `json:"dayIndex"`
	Label      string  `json:"label"`
	Date       string  `json:"date"`
	EventID    *string `json:"eventId"`
	Link       *string `json:"link"`
	Error      *string `json:"error"`
	StatusCode int     `json:"statusCode"`
}

type calendarResp struct {
	Status       model.BatchStatus   `json:"status"`
	CreatedCount int                 `json:"createdCount"`
	FailedCount  int                 `json:"failedCount"`
	Events       []calendarEventResp `json:"events"`
}

func (h *handler) newCalendarResp(o itinerary.CalendarOutput) calendarResp {
	events := make([]calendarEventResp, len(o.Events))
	for i, ev := range o.Events {
		events[i] = calendarEventResp{
			DayIndex:   ev.DayIndex,
			Label:      ev.Label,
			Date:       ev.Date,
			EventID:    optional(ev.EventID),
			Link:       optional(ev.Link),
			Error:      optional(ev.Error),
			StatusCode: ev.StatusCode,
		}
	}
	return calendarResp{
		Status:       o.Status,
		CreatedCount: o.CreatedCount,
		FailedCount:  o.FailedCount,
		Events:       events,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
