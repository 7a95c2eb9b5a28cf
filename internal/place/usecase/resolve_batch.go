package usecase

import (
	"context"
	"errors"
	"net/http"

	"trip-planner/internal/model"
	"trip-planner/internal/place"
)

// ResolvePlaces resolves names sequentially. Provider spacing is enforced by
// the providers themselves. Once ctx ends no further name is attempted and the
// items finished so far are returned with Cancelled set.
func (uc *implUseCase) ResolvePlaces(ctx context.Context, input place.ResolveBatchInput) (place.ResolveBatchOutput, error) {
	if len(input.Names) == 0 {
		return place.ResolveBatchOutput{}, place.ErrNoNames
	}
	if len(input.Names) > place.MaxBatchNames {
		return place.ResolveBatchOutput{}, place.ErrTooManyNames
	}

	out := place.ResolveBatchOutput{Items: make([]place.ResolveBatchItem, 0, len(input.Names))}
	succeeded := 0

	for i, name := range input.Names {
		if ctx.Err() != nil {
			out.Cancelled = true
			break
		}

		candidate, err := uc.Resolve(ctx, place.ResolveInput{Name: name, Destination: input.Destination})
		if ctx.Err() != nil {
			out.Cancelled = true
			break
		}

		item := place.ResolveBatchItem{Index: i, Name: name}
		if err != nil {
			item.Error = err.Error()
			item.StatusCode = statusOf(err)
			out.FailedCount++
		} else {
			item.Candidate = &candidate
			item.StatusCode = http.StatusOK
			succeeded++
			if candidate.Resolved {
				out.ResolvedCount++
			}
		}
		out.Items = append(out.Items, item)
	}

	out.ProcessedCount = succeeded
	out.Status = model.NewBatchStatus(succeeded, out.FailedCount)
	if out.Cancelled {
		uc.l.Infof(ctx, "place.usecase.ResolvePlaces: cancelled after %d of %d names", len(out.Items), len(input.Names))
	}
	return out, nil
}

func statusOf(err error) int {
	var pErr *place.PlaceSearchProviderError
	switch {
	case errors.Is(err, place.ErrEmptyName):
		return http.StatusBadRequest
	case errors.As(err, &pErr) && pErr.IsRateLimited():
		return http.StatusTooManyRequests
	case errors.Is(err, place.ErrNoProviders):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
