// Package metrics holds the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "place_provider_requests_total",
			Help: "Total number of place provider calls",
		},
		[]string{"provider", "outcome"},
	)

	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "place_provider_request_duration_seconds",
			Help:    "Duration of place provider calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	GeocodeCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_cache_lookups_total",
			Help: "Total number of geocode cache lookups",
		},
		[]string{"provider", "result"},
	)

	SearchThrottled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "place_search_throttled_total",
			Help: "Total number of place searches rejected by the per-client throttle",
		},
	)

	ItineraryParses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinerary_parses_total",
			Help: "Total number of itinerary texts parsed",
		},
		[]string{"source"},
	)

	ParseWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinerary_parse_warnings_total",
			Help: "Total number of warnings attached to parse results",
		},
		[]string{"code"},
	)

	ScreenshotExtractions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "screenshot_extractions_total",
			Help: "Total number of screenshot text extractions",
		},
		[]string{"outcome"},
	)
)

const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"

	CacheHit  = "hit"
	CacheMiss = "miss"
)
