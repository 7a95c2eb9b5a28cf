package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"trip-planner/internal/itinerary"
	"trip-planner/internal/itinerary/parser"
	"trip-planner/pkg/gemini"
)

// startDate parses an optional start date. The zero time means none was given.
func (uc *implUseCase) startDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	if uc.dates == nil {
		return time.Time{}, fmt.Errorf("%w: no timezone configured", itinerary.ErrInvalidStartDate)
	}
	t, err := uc.dates.ParseStartDate(value, uc.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", itinerary.ErrInvalidStartDate, err)
	}
	return t, nil
}

// generate calls the model and maps transport failures to itinerary errors.
func (uc *implUseCase) generate(ctx context.Context, req gemini.GenerateRequest) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if gemini.IsRateLimited(err) {
			return "", fmt.Errorf("%w: %v", itinerary.ErrProviderRateLimited, err)
		}
		return "", fmt.Errorf("%w: %v", itinerary.ErrProviderUnavailable, err)
	}
	return resp.Text(), nil
}

func jsonRequest(parts ...gemini.Part) gemini.GenerateRequest {
	return gemini.GenerateRequest{
		Contents:         []gemini.Content{{Role: "user", Parts: parts}},
		GenerationConfig: &gemini.GenerationConfig{ResponseMimeType: gemini.MimeTypeJSON},
	}
}

// itemStatus is the HTTP-style status reported for a failed batch item.
func itemStatus(err error) int {
	switch {
	case errors.Is(err, itinerary.ErrProviderRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, itinerary.ErrProviderUnavailable), errors.Is(err, itinerary.ErrUnreadableResponse):
		return http.StatusBadGateway
	case errors.Is(err, itinerary.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, itinerary.ErrUnsupportedImage):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, itinerary.ErrNoTextFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// firstNonBlank returns the first non-blank value, trimmed.
func firstNonBlank(values ...*string) *string {
	for _, v := range values {
		if v == nil {
			continue
		}
		if s := strings.TrimSpace(*v); s != "" {
			return &s
		}
	}
	return nil
}

// presentHint returns v unchanged, or nil when it is blank.
func presentHint(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}

// durationFromModel accepts a model-reported day count within the parser's bounds.
func durationFromModel(v *float64) *int {
	if v == nil || math.IsNaN(*v) {
		return nil
	}
	n := int(math.Round(*v))
	if n < 1 || n > parser.MaxSynthesizedDays {
		return nil
	}
	return &n
}
