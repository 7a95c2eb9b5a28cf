package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"trip-planner/internal/itinerary"
	"trip-planner/internal/model"
	"trip-planner/pkg/gemini"
	"trip-planner/pkg/imageprep"
	"trip-planner/pkg/llmjson"
	"trip-planner/pkg/metrics"
)

// ImportScreenshots processes images one at a time. A failed image is recorded
// on its item and does not stop the batch.
func (uc *implUseCase) ImportScreenshots(ctx context.Context, input itinerary.ScreenshotsInput) (itinerary.ScreenshotsOutput, error) {
	if len(input.Images) == 0 {
		return itinerary.ScreenshotsOutput{}, itinerary.ErrNoImages
	}
	if len(input.Images) > uc.opts.MaxScreenshots {
		return itinerary.ScreenshotsOutput{}, itinerary.ErrTooManyImages
	}
	if uc.llm == nil {
		return itinerary.ScreenshotsOutput{}, itinerary.ErrAINotConfigured
	}
	if _, err := uc.startDate(input.StartDate); err != nil {
		return itinerary.ScreenshotsOutput{}, err
	}

	out := itinerary.ScreenshotsOutput{
		BatchID:  uuid.NewString(),
		Items:    make([]itinerary.ScreenshotItem, 0, len(input.Images)),
		Warnings: []string{},
	}

	var (
		texts    []string
		detected []*string
	)
	for i, img := range input.Images {
		if err := ctx.Err(); err != nil {
			return itinerary.ScreenshotsOutput{}, err
		}

		item := itinerary.ScreenshotItem{Index: i, Filename: img.Filename}
		reply, err := uc.extractScreenshot(ctx, img)
		if err != nil {
			if ctx.Err() != nil {
				return itinerary.ScreenshotsOutput{}, ctx.Err()
			}
			uc.l.Warnf(ctx, "itinerary.usecase.ImportScreenshots: batch=%s item=%d: %v", out.BatchID, i, err)
			metrics.ScreenshotExtractions.WithLabelValues(metrics.OutcomeError).Inc()

			item.Status = itinerary.ItemStatusFailed
			item.StatusCode = itemStatus(err)
			item.Error = err.Error()
			out.FailedCount++
			out.Items = append(out.Items, item)
			continue
		}

		metrics.ScreenshotExtractions.WithLabelValues(metrics.OutcomeSuccess).Inc()
		item.Status = itinerary.ItemStatusOK
		item.StatusCode = 200
		item.TextLength = len([]rune(reply.Text))
		out.ProcessedCount++
		out.Items = append(out.Items, item)

		texts = append(texts, reply.Text)
		detected = append(detected, reply.Destination)
	}

	out.Status = model.NewBatchStatus(out.ProcessedCount, out.FailedCount)
	if out.FailedCount > 0 {
		out.Warnings = append(out.Warnings,
			fmt.Sprintf("OCR extraction failed for %d of %d screenshots", out.FailedCount, len(input.Images)))
	}

	if len(texts) > 0 {
		result, err := uc.parse(ctx, itinerary.ParseInput{
			RawText:      strings.Join(texts, "\n\n"),
			Destination:  firstNonBlank(append([]*string{input.Destination}, detected...)...),
			DurationDays: input.DurationDays,
			StartDate:    input.StartDate,
		}, sourceScreenshots)
		switch {
		case err == nil:
			out.Result = &result
		case ctx.Err() != nil:
			return itinerary.ScreenshotsOutput{}, ctx.Err()
		default:
			uc.l.Warnf(ctx, "itinerary.usecase.ImportScreenshots: batch=%s parse: %v", out.BatchID, err)
			out.Warnings = append(out.Warnings, fmt.Sprintf("combined OCR text could not be parsed: %v", err))
		}
	}

	return out, nil
}

func (uc *implUseCase) extractScreenshot(ctx context.Context, img itinerary.Screenshot) (screenshotReply, error) {
	if len(img.Data) > uc.opts.MaxImageBytes {
		return screenshotReply{}, itinerary.ErrImageTooLarge
	}
	mimeType := imageprep.DetectMimeType(img.Data, img.MimeType)
	if !strings.HasPrefix(mimeType, "image/") {
		return screenshotReply{}, itinerary.ErrUnsupportedImage
	}

	payload := imageprep.Image{Data: img.Data, MimeType: mimeType}
	if prepared, err := imageprep.Prepare(img.Data, imageprep.Options{MaxDimension: uc.opts.MaxImageDimension}); err == nil {
		payload = prepared
	} else {
		uc.l.Debugf(ctx, "itinerary.usecase.extractScreenshot: sending original %s: %v", mimeType, err)
	}

	raw, err := uc.generate(ctx, jsonRequest(
		gemini.Part{Text: gemini.ScreenshotOCRPrompt},
		gemini.NewImagePart(payload.MimeType, payload.Data),
	))
	if err != nil {
		return screenshotReply{}, err
	}

	reply, err := llmjson.Parse[screenshotReply](raw)
	if err != nil {
		return screenshotReply{}, fmt.Errorf("%w: %v", itinerary.ErrUnreadableResponse, err)
	}
	reply.Text = strings.TrimSpace(reply.Text)
	if reply.Text == "" {
		return screenshotReply{}, itinerary.ErrNoTextFound
	}
	return reply, nil
}
