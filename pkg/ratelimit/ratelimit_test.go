package ratelimit_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"trip-planner/pkg/ratelimit"
)

func TestThrottle(t *testing.T) {
	th := ratelimit.NewThrottle(50*time.Millisecond, 10)

	if !th.Allow("10.0.0.1") {
		t.Fatal("first call should be allowed")
	}
	if th.Allow("10.0.0.1") {
		t.Fatal("second call inside the window should be rejected")
	}
	if !th.Allow("10.0.0.2") {
		t.Fatal("other clients are independent")
	}

	time.Sleep(60 * time.Millisecond)
	if !th.Allow("10.0.0.1") {
		t.Fatal("call after the window should be allowed")
	}
}

func TestThrottle_Bounded(t *testing.T) {
	th := ratelimit.NewThrottle(time.Second, 2)
	th.Allow("a")
	th.Allow("b")
	th.Allow("c")
	if th.Len() != 2 {
		t.Errorf("expected 2 tracked clients, got %d", th.Len())
	}
}

func TestThrottle_Concurrent(t *testing.T) {
	th := ratelimit.NewThrottle(time.Minute, 10)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if th.Allow("same-client") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 1 {
		t.Errorf("expected exactly 1 allowed call, got %d", allowed)
	}
}

func TestSpacer_MeasuresFromEndOfPreviousCall(t *testing.T) {
	const interval = 80 * time.Millisecond
	s := ratelimit.NewSpacer(interval)
	ctx := context.Background()

	var firstEnd, secondStart time.Time
	err := s.Do(ctx, func(context.Context) error {
		time.Sleep(30 * time.Millisecond)
		firstEnd = time.Now()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = s.Do(ctx, func(context.Context) error {
		secondStart = time.Now()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gap := secondStart.Sub(firstEnd); gap < interval {
		t.Errorf("gap between calls = %v, want >= %v", gap, interval)
	}
}

func TestSpacer_FirstCallDoesNotWait(t *testing.T) {
	s := ratelimit.NewSpacer(time.Hour)

	done := make(chan struct{})
	go func() {
		s.Do(context.Background(), func(context.Context) error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("first call should run immediately")
	}
}

func TestSpacer_PropagatesError(t *testing.T) {
	s := ratelimit.NewSpacer(0)
	want := errors.New("boom")
	if err := s.Do(context.Background(), func(context.Context) error { return want }); !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
}

func TestSpacer_CancelWhileWaiting(t *testing.T) {
	s := ratelimit.NewSpacer(time.Hour)
	s.Do(context.Background(), func(context.Context) error { return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	called := false
	err := s.Do(ctx, func(context.Context) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if called {
		t.Error("fn must not run after cancellation")
	}
}
