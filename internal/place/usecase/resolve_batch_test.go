package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"trip-planner/internal/model"
	"trip-planner/internal/place"
	"trip-planner/internal/place/usecase"
	"trip-planner/pkg/log"
	"trip-planner/pkg/placeprovider"
)

type scriptedProvider struct {
	byName map[string]func() ([]model.PlaceCandidate, error)
	order  []string
}

func (s *scriptedProvider) Name() string { return "scripted" }

func (s *scriptedProvider) Search(_ context.Context, q placeprovider.Query) ([]model.PlaceCandidate, error) {
	s.order = append(s.order, q.Text)
	if fn, ok := s.byName[q.Text]; ok {
		return fn()
	}
	return nil, nil
}

func TestResolvePlaces(t *testing.T) {
	p := &scriptedProvider{byName: map[string]func() ([]model.PlaceCandidate, error){
		"Central Park": func() ([]model.PlaceCandidate, error) {
			return []model.PlaceCandidate{centralParkSydney, centralParkNY}, nil
		},
		"MoMA": func() ([]model.PlaceCandidate, error) {
			return nil, &place.PlaceSearchProviderError{Provider: "scripted", Status: http.StatusTooManyRequests, Err: errors.New("quota")}
		},
	}}
	uc := usecase.New(log.NewNop(), p, nil)

	out, err := uc.ResolvePlaces(context.Background(), place.ResolveBatchInput{
		Names:       []string{"Central Park", "MoMA", "Atlantis", ""},
		Destination: "New York",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Status != model.BatchStatusPartial {
		t.Errorf("status = %v, want partial", out.Status)
	}
	if out.ProcessedCount != 2 || out.FailedCount != 2 || out.ResolvedCount != 1 {
		t.Errorf("counts processed=%d failed=%d resolved=%d", out.ProcessedCount, out.FailedCount, out.ResolvedCount)
	}
	if len(out.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(out.Items))
	}

	if c := out.Items[0].Candidate; c == nil || *c.FormattedAddress != *centralParkNY.FormattedAddress {
		t.Errorf("item 0 should resolve to New York: %+v", out.Items[0])
	}
	if out.Items[1].StatusCode != http.StatusTooManyRequests || out.Items[1].Candidate != nil {
		t.Errorf("item 1 should carry the 429: %+v", out.Items[1])
	}
	if c := out.Items[2].Candidate; c == nil || c.Resolved {
		t.Errorf("item 2 should be unresolved: %+v", out.Items[2])
	}
	if out.Items[3].StatusCode != http.StatusBadRequest {
		t.Errorf("empty name should be a 400 item: %+v", out.Items[3])
	}

	want := []string{"Central Park", "MoMA", "Atlantis"}
	if len(p.order) != len(want) {
		t.Fatalf("provider calls %v", p.order)
	}
	for i := range want {
		if p.order[i] != want[i] {
			t.Errorf("call %d = %q, want %q (sequential order)", i, p.order[i], want[i])
		}
	}
}

func TestResolvePlaces_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := &scriptedProvider{byName: map[string]func() ([]model.PlaceCandidate, error){
		"first": func() ([]model.PlaceCandidate, error) {
			return []model.PlaceCandidate{centralParkNY}, nil
		},
		"second": func() ([]model.PlaceCandidate, error) {
			cancel()
			return nil, context.Canceled
		},
	}}
	uc := usecase.New(log.NewNop(), p, nil)

	out, err := uc.ResolvePlaces(ctx, place.ResolveBatchInput{Names: []string{"first", "second", "third"}})
	if err != nil {
		t.Fatalf("cancellation must not be an error: %v", err)
	}
	if !out.Cancelled {
		t.Errorf("expected cancelled flag")
	}
	if len(out.Items) != 1 || out.ProcessedCount != 1 {
		t.Errorf("expected only the first item, got %+v", out.Items)
	}
	if len(p.order) != 2 {
		t.Errorf("no call expected after cancellation, got %v", p.order)
	}
	if out.Status != model.BatchStatusReady {
		t.Errorf("status = %v, want ready", out.Status)
	}
}

func TestResolvePlaces_Validation(t *testing.T) {
	uc := usecase.New(log.NewNop(), &fakeProvider{name: "fake"}, nil)

	if _, err := uc.ResolvePlaces(context.Background(), place.ResolveBatchInput{}); !errors.Is(err, place.ErrNoNames) {
		t.Errorf("expected ErrNoNames, got %v", err)
	}

	names := make([]string, place.MaxBatchNames+1)
	if _, err := uc.ResolvePlaces(context.Background(), place.ResolveBatchInput{Names: names}); !errors.Is(err, place.ErrTooManyNames) {
		t.Errorf("expected ErrTooManyNames, got %v", err)
	}
}

func TestResolvePlaces_GeocoderRateLimitedAfterEmptyPlaces(t *testing.T) {
	places := &fakeProvider{name: "places"}
	geo := &fakeProvider{name: "geo", err: &place.PlaceSearchProviderError{Provider: "geo", Status: http.StatusTooManyRequests, Err: errors.New("quota")}}
	uc := usecase.New(log.NewNop(), placeprovider.NewChain([]placeprovider.Provider{places}, []placeprovider.Provider{geo}), nil)

	if _, err := uc.Resolve(context.Background(), place.ResolveInput{Name: "Central Park"}); !place.IsRateLimited(err) {
		t.Errorf("Resolve: expected rate-limited error, got %v", err)
	}

	out, err := uc.ResolvePlaces(context.Background(), place.ResolveBatchInput{Names: []string{"Central Park"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != model.BatchStatusFailed || out.FailedCount != 1 || out.ProcessedCount != 0 {
		t.Errorf("status=%v failed=%d processed=%d", out.Status, out.FailedCount, out.ProcessedCount)
	}
	if out.Items[0].StatusCode != http.StatusTooManyRequests || out.Items[0].Candidate != nil {
		t.Errorf("unexpected item %+v", out.Items[0])
	}
}
