package geocache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRU is an in-process cache bounded by size and entry age.
type LRU[V any] struct {
	lru *expirable.LRU[string, V]
}

// NewLRU creates an LRU holding at most size entries for ttl each.
func NewLRU[V any](size int, ttl time.Duration) *LRU[V] {
	return &LRU[V]{lru: expirable.NewLRU[string, V](size, nil, ttl)}
}

func (c *LRU[V]) Get(_ context.Context, key string) (V, bool) {
	return c.lru.Get(key)
}

func (c *LRU[V]) Set(_ context.Context, key string, value V) {
	c.lru.Add(key, value)
}

// Len returns the number of live entries.
func (c *LRU[V]) Len() int {
	return c.lru.Len()
}
