package ratelimit

import (
	"context"
	"time"
)

// Spacer serializes calls and keeps at least interval between the end of one
// call and the start of the next.
type Spacer struct {
	interval time.Duration
	sem      chan struct{}
	lastDone time.Time
}

// NewSpacer creates a Spacer. A zero interval only serializes calls.
func NewSpacer(interval time.Duration) *Spacer {
	return &Spacer{
		interval: interval,
		sem:      make(chan struct{}, 1),
	}
}

// Do waits for its turn and the remaining interval, then runs fn. It returns
// ctx.Err() without calling fn if ctx ends while waiting.
func (s *Spacer) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.sem }()

	if !s.lastDone.IsZero() {
		if wait := s.interval - time.Since(s.lastDone); wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	err := fn(ctx)
	s.lastDone = time.Now()
	return err
}
