package http

import (
	"github.com/gin-gonic/gin"

	"trip-planner/pkg/response"
)

// Parse godoc
// @Summary     Parse itinerary text
// @Description Splits raw itinerary text into day groups of place candidates. A startDate assigns a date to each day.
// @Tags        Itineraries
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Raw text and optional hints"
// @Success     200  {object} model.ParseResult
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Text too long"
// @Router      /api/v1/itineraries/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "itinerary.delivery.http.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, result)
}

// DetectWarnings godoc
// @Summary     Re-check an itinerary
// @Description Runs the duplicate-name and ambiguous-wording checks against text and edited day groups.
// @Tags        Itineraries
// @Accept      json
// @Produce     json
// @Param       body body warningsReq true "Raw text and day groups"
// @Success     200  {object} warningsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/itineraries/warnings [POST]
func (h *handler) DetectWarnings(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWarningsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	warnings, err := h.uc.DetectWarnings(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "itinerary.delivery.http.DetectWarnings: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, warningsResp{Warnings: warnings})
}

// ImportScreenshots godoc
// @Summary     Import screenshots
// @Description Transcribes each screenshot in turn and parses the combined text. Failed images are reported per item.
// @Tags        Itineraries
// @Accept      multipart/form-data
// @Produce     json
// @Param       images[]     formData file   true  "Screenshots"
// @Param       destination  formData string false "Destination hint"
// @Param       durationDays formData int    false "Trip length in days"
// @Param       startDate    formData string false "Trip start date"
// @Success     200 {object} screenshotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Text extraction not configured"
// @Router      /api/v1/itineraries/screenshots [POST]
func (h *handler) ImportScreenshots(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processScreenshotsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ImportScreenshots(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "itinerary.delivery.http.ImportScreenshots: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScreenshotsResp(out))
}

// ImportURL godoc
// @Summary     Import from a web page
// @Description Fetches the page, extracts its itinerary and parses it. Caller hints take precedence.
// @Tags        Itineraries
// @Accept      json
// @Produce     json
// @Param       body body urlReq true "Page URL and optional hints"
// @Success     200  {object} urlResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "No itinerary found"
// @Failure     429  {object} response.Resp "Provider rate limited"
// @Failure     502  {object} response.Resp "Provider unavailable"
// @Router      /api/v1/itineraries/url [POST]
func (h *handler) ImportURL(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processURLReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ImportURL(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "itinerary.delivery.http.ImportURL: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newURLResp(out))
}

// ExportCalendar godoc
// @Summary     Export to calendar
// @Description Creates one all-day event per non-empty day, starting at startDate.
// @Tags        Itineraries
// @Accept      json
// @Produce     json
// @Param       body body calendarReq true "Day groups, start date and destination"
// @Success     200  {object} calendarResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Calendar not configured"
// @Router      /api/v1/itineraries/calendar [POST]
func (h *handler) ExportCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ExportCalendar(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "itinerary.delivery.http.ExportCalendar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCalendarResp(out))
}
