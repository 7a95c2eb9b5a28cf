package placeprovider

import (
	"context"
	"slices"
	"strconv"

	"trip-planner/internal/model"
	"trip-planner/pkg/geocache"
	"trip-planner/pkg/metrics"
)

type cachedProvider struct {
	next  Provider
	cache geocache.Cache[[]model.PlaceCandidate]
}

// WithCache consults cache before calling p and stores every successful
// answer, empty ones included.
func WithCache(p Provider, cache geocache.Cache[[]model.PlaceCandidate]) Provider {
	return &cachedProvider{next: p, cache: cache}
}

func (p *cachedProvider) Name() string { return p.next.Name() }

func (p *cachedProvider) Search(ctx context.Context, q Query) ([]model.PlaceCandidate, error) {
	key := geocache.Key(p.next.Name()+":"+strconv.Itoa(q.limit()), q.Text, q.Destination)

	if cached, ok := p.cache.Get(ctx, key); ok {
		metrics.GeocodeCacheLookups.WithLabelValues(p.next.Name(), metrics.CacheHit).Inc()
		return slices.Clone(cached), nil
	}
	metrics.GeocodeCacheLookups.WithLabelValues(p.next.Name(), metrics.CacheMiss).Inc()

	candidates, err := p.next.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	p.cache.Set(ctx, key, slices.Clone(candidates))
	return candidates, nil
}
