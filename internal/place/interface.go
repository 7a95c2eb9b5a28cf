package place

import (
	"context"

	"trip-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Resolve picks the best provider match for a single place name.
	Resolve(ctx context.Context, input ResolveInput) (model.PlaceCandidate, error)

	// Search returns ranked candidates for an interactive query. Calls from the
	// same client inside the throttle window fail with ErrRateLimited.
	Search(ctx context.Context, input SearchInput) ([]model.PlaceCandidate, error)

	// ResolvePlaces resolves names one after another with a shared destination.
	ResolvePlaces(ctx context.Context, input ResolveBatchInput) (ResolveBatchOutput, error)
}
