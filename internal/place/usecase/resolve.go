package usecase

import (
	"context"
	"strings"

	"trip-planner/internal/model"
	"trip-planner/internal/place"
	"trip-planner/pkg/placeprovider"
)

const resolveCandidateLimit = 5

// Resolve queries the provider chain and selects one candidate. When every
// provider fails, the last provider error is returned. Cancellation yields an
// unresolved candidate without error.
func (uc *implUseCase) Resolve(ctx context.Context, input place.ResolveInput) (model.PlaceCandidate, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.PlaceCandidate{}, place.ErrEmptyName
	}
	if uc.provider == nil {
		return model.PlaceCandidate{}, place.ErrNoProviders
	}

	candidates, err := uc.provider.Search(ctx, placeprovider.Query{
		Text:        name,
		Destination: strings.TrimSpace(input.Destination),
		Limit:       resolveCandidateLimit,
	})
	if err != nil {
		if ctx.Err() != nil {
			return model.Unresolved(name), nil
		}
		uc.l.Warnf(ctx, "place.usecase.Resolve: providers failed: %v", err)
		return model.PlaceCandidate{}, err
	}
	if len(candidates) == 0 {
		return model.Unresolved(name), nil
	}

	best := selectBest(candidates, input.Destination)
	best.Name = name
	return best, nil
}
