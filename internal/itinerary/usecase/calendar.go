package usecase

import (
	"context"
	"net/http"
	"strings"

	"trip-planner/internal/itinerary"
	"trip-planner/internal/model"
	"trip-planner/pkg/datemath"
	"trip-planner/pkg/gcalendar"
)

// ExportCalendar creates one all-day event per non-empty day, dated from the
// start date by day index. A failed day is recorded and the export continues.
func (uc *implUseCase) ExportCalendar(ctx context.Context, input itinerary.CalendarInput) (itinerary.CalendarOutput, error) {
	if uc.calendar == nil {
		return itinerary.CalendarOutput{}, itinerary.ErrCalendarNotConfigured
	}
	if len(input.Days) == 0 {
		return itinerary.CalendarOutput{}, itinerary.ErrNoDays
	}
	if strings.TrimSpace(input.StartDate) == "" {
		return itinerary.CalendarOutput{}, itinerary.ErrInvalidStartDate
	}
	start, err := uc.startDate(input.StartDate)
	if err != nil {
		return itinerary.CalendarOutput{}, err
	}

	destination := firstNonBlank(input.Destination)
	dates := datemath.DayDates(start, len(input.Days))
	out := itinerary.CalendarOutput{Events: []itinerary.CalendarEvent{}}

	for i, day := range input.Days {
		if len(day.Places) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return itinerary.CalendarOutput{}, err
		}

		ev := itinerary.CalendarEvent{DayIndex: i, Label: day.Label, Date: dates[i]}
		req := gcalendar.AllDayEventRequest{
			CalendarID:  uc.opts.CalendarID,
			Summary:     eventSummary(day.Label, destination),
			Description: eventDescription(day.Places),
			Date:        start.AddDate(0, 0, i),
		}
		if destination != nil {
			req.Location = *destination
		}

		created, err := uc.calendar.CreateAllDayEvent(ctx, req)
		if err != nil {
			uc.l.Warnf(ctx, "itinerary.usecase.ExportCalendar: day %d: %v", i, err)
			ev.Error = err.Error()
			ev.StatusCode = http.StatusBadGateway
			out.FailedCount++
		} else {
			ev.EventID = created.ID
			ev.Link = created.HtmlLink
			ev.StatusCode = http.StatusOK
			out.CreatedCount++
		}
		out.Events = append(out.Events, ev)
	}

	if len(out.Events) == 0 {
		return itinerary.CalendarOutput{}, itinerary.ErrNoDays
	}
	out.Status = model.NewBatchStatus(out.CreatedCount, out.FailedCount)
	return out, nil
}

func eventSummary(label string, destination *string) string {
	if destination == nil {
		return label
	}
	return *destination + ": " + label
}

// eventDescription lists one place per line, with its time and notes when present.
func eventDescription(places []model.ParsedPlace) string {
	var b strings.Builder
	for i, p := range places {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		if p.TimeText != nil && *p.TimeText != "" {
			b.WriteString(*p.TimeText)
			b.WriteByte(' ')
		}
		b.WriteString(p.Name)
		if p.Notes != nil && *p.Notes != "" {
			b.WriteString(" (")
			b.WriteString(*p.Notes)
			b.WriteByte(')')
		}
	}
	return b.String()
}
