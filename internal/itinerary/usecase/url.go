package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trip-planner/internal/itinerary"
	"trip-planner/pkg/gemini"
	"trip-planner/pkg/llmjson"
	"trip-planner/pkg/webtext"
)

// ImportURL fetches a page, asks the model for its itinerary and parses it.
// Caller hints take precedence over what the model reports.
func (uc *implUseCase) ImportURL(ctx context.Context, input itinerary.URLInput) (itinerary.URLOutput, error) {
	u, err := webtext.ValidateURL(input.URL)
	if err != nil {
		return itinerary.URLOutput{}, itinerary.ErrInvalidURL
	}
	if uc.llm == nil || uc.fetcher == nil {
		return itinerary.URLOutput{}, itinerary.ErrAINotConfigured
	}
	if _, err := uc.startDate(input.StartDate); err != nil {
		return itinerary.URLOutput{}, err
	}

	page, err := uc.fetcher.Fetch(ctx, u.String())
	if err != nil {
		if ctx.Err() != nil {
			return itinerary.URLOutput{}, ctx.Err()
		}
		uc.l.Warnf(ctx, "itinerary.usecase.ImportURL: fetch %s: %v", u.Host, err)
		if errors.Is(err, webtext.ErrUnsupportedContent) {
			return itinerary.URLOutput{}, itinerary.ErrUnsupportedPage
		}
		return itinerary.URLOutput{}, fmt.Errorf("%w: fetch page: %v", itinerary.ErrProviderUnavailable, err)
	}
	if strings.TrimSpace(page.Text) == "" {
		return itinerary.URLOutput{}, itinerary.ErrNoTextFound
	}

	raw, err := uc.generate(ctx, jsonRequest(gemini.Part{Text: gemini.BuildURLExtractionPrompt(u.String(), page.Text)}))
	if err != nil {
		uc.l.Warnf(ctx, "itinerary.usecase.ImportURL: extract: %v", err)
		return itinerary.URLOutput{}, err
	}

	reply, err := llmjson.Parse[urlReply](raw)
	if err != nil {
		uc.l.Warnf(ctx, "itinerary.usecase.ImportURL: %v", err)
		return itinerary.URLOutput{}, fmt.Errorf("%w: %v", itinerary.ErrUnreadableResponse, err)
	}
	if strings.TrimSpace(reply.ItineraryText) == "" {
		return itinerary.URLOutput{}, itinerary.ErrNoTextFound
	}

	duration := input.DurationDays
	if duration == nil {
		duration = durationFromModel(reply.DurationDays)
	}

	result, err := uc.parse(ctx, itinerary.ParseInput{
		RawText:      reply.ItineraryText,
		Destination:  firstNonBlank(input.Destination, reply.Destination),
		DurationDays: duration,
		StartDate:    input.StartDate,
	}, sourceURL)
	if err != nil {
		return itinerary.URLOutput{}, err
	}

	return itinerary.URLOutput{URL: u.String(), Title: page.Title, Result: result}, nil
}
