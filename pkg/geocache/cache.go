// Package geocache caches geocoding answers by normalized query and destination.
package geocache

import (
	"context"
	"regexp"
	"strings"
)

// Cache stores values by key. Implementations are safe for concurrent use and
// treat backend failures as misses.
type Cache[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V)
}

var spaceRe = regexp.MustCompile(`\s+`)

// Key builds the cache key for a provider query.
func Key(provider, query, destination string) string {
	return provider + "|" + normalize(query) + "|" + normalize(destination)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(spaceRe.ReplaceAllString(s, " ")))
}
