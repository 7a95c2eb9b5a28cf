package placeprovider

import (
	"context"
	"time"

	"trip-planner/internal/model"
	"trip-planner/pkg/metrics"
)

type instrumentedProvider struct {
	next Provider
}

// WithMetrics records call counts and latency for p.
func WithMetrics(p Provider) Provider {
	return &instrumentedProvider{next: p}
}

func (p *instrumentedProvider) Name() string { return p.next.Name() }

func (p *instrumentedProvider) Search(ctx context.Context, q Query) ([]model.PlaceCandidate, error) {
	start := time.Now()
	candidates, err := p.next.Search(ctx, q)
	metrics.ProviderDuration.WithLabelValues(p.next.Name()).Observe(time.Since(start).Seconds())

	outcome := metrics.OutcomeSuccess
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case len(candidates) == 0:
		outcome = metrics.OutcomeEmpty
	}
	metrics.ProviderRequests.WithLabelValues(p.next.Name(), outcome).Inc()

	return candidates, err
}
