package usecase_test

import (
	"context"
	"sync"

	"trip-planner/internal/model"
	"trip-planner/pkg/placeprovider"
)

type fakeProvider struct {
	mu         sync.Mutex
	name       string
	candidates []model.PlaceCandidate
	err        error
	calls      int
	onSearch   func(q placeprovider.Query)
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Search(_ context.Context, q placeprovider.Query) ([]model.PlaceCandidate, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.onSearch != nil {
		f.onSearch(q)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func strPtr(s string) *string { return &s }

func geoCandidate(display, address string, lat, lng float64, source model.PlaceSource) model.PlaceCandidate {
	return model.PlaceCandidate{
		Name:             display,
		Resolved:         true,
		DisplayName:      strPtr(display),
		FormattedAddress: strPtr(address),
		Lat:              &lat,
		Lng:              &lng,
		Source:           source,
	}
}

var (
	centralParkSydney = geoCandidate("Centennial Park", "Central Park, Sydney NSW, Australia", -33.89, 151.23, model.PlaceSourceGeocoding)
	centralParkNY     = geoCandidate("Central Park", "Central Park, New York, NY, USA", 40.78, -73.96, model.PlaceSourceGeocoding)
)
