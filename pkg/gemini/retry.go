package gemini

import (
	"context"
	"errors"
	"net/http"
	"time"
)

type retryingGenerator struct {
	next     Generator
	attempts int
	delay    time.Duration
}

// WithRetry retries transient failures (5xx answers and transport errors) with
// a linearly growing delay. Rate limits and other 4xx answers are returned at
// once so callers can report them.
func WithRetry(next Generator, attempts int, delay time.Duration) Generator {
	if attempts <= 1 {
		return next
	}
	return &retryingGenerator{next: next, attempts: attempts, delay: delay}
}

func (g *retryingGenerator) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	var lastErr error
	for attempt := 0; attempt < g.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * g.delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := g.next.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !retryable(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	code := StatusCode(err)
	return code == 0 || code >= http.StatusInternalServerError
}
