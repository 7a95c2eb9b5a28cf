package http

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"trip-planner/internal/itinerary"
)

// imagesField is the multipart field carrying screenshots. The bare name is
// accepted too.
const imagesField = "images[]"

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processWarningsReq(c *gin.Context) (warningsReq, error) {
	var req warningsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processScreenshotsReq(c *gin.Context) (itinerary.ScreenshotsInput, error) {
	var form screenshotsForm
	if err := c.ShouldBind(&form); err != nil {
		return itinerary.ScreenshotsInput{}, err
	}

	mf, err := c.MultipartForm()
	if err != nil {
		return itinerary.ScreenshotsInput{}, fmt.Errorf("expected multipart form: %w", err)
	}
	files := mf.File[imagesField]
	if len(files) == 0 {
		files = mf.File["images"]
	}
	if len(files) == 0 {
		return itinerary.ScreenshotsInput{}, itinerary.ErrNoImages
	}

	images := make([]itinerary.Screenshot, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return itinerary.ScreenshotsInput{}, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return itinerary.ScreenshotsInput{}, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		images = append(images, itinerary.Screenshot{
			Filename: fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	return form.toInput(images), nil
}

func (h *handler) processURLReq(c *gin.Context) (urlReq, error) {
	var req urlReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCalendarReq(c *gin.Context) (calendarReq, error) {
	var req calendarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
