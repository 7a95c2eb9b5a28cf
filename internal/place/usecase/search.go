package usecase

import (
	"context"
	"strings"

	"trip-planner/internal/model"
	"trip-planner/internal/place"
	"trip-planner/pkg/metrics"
	"trip-planner/pkg/placeprovider"
)

// Search throttles per client before any provider call, then returns ranked
// candidates. Cancellation yields an empty list without error.
func (uc *implUseCase) Search(ctx context.Context, input place.SearchInput) ([]model.PlaceCandidate, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, place.ErrEmptyQuery
	}

	limit := input.Limit
	if limit <= 0 {
		limit = place.DefaultSearchLimit
	}
	limit = min(limit, place.MaxSearchLimit)

	if uc.throttle != nil && !uc.throttle.Allow(input.ClientKey) {
		metrics.SearchThrottled.Inc()
		return nil, place.ErrRateLimited
	}
	if uc.provider == nil {
		return nil, place.ErrNoProviders
	}

	candidates, err := uc.provider.Search(ctx, placeprovider.Query{
		Text:        query,
		Destination: strings.TrimSpace(input.Destination),
		Limit:       limit,
	})
	if err != nil {
		if ctx.Err() != nil {
			return []model.PlaceCandidate{}, nil
		}
		uc.l.Warnf(ctx, "place.usecase.Search: providers failed: %v", err)
		return nil, err
	}

	ranked := rank(candidates, input.Destination)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
