package worker

import (
	"context"
	"testing"

	"golang.org/x/time/rate"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(55)
	want := rate.Limit(55.0 / 3600)
	if limiter.perHour != want {
		t.Errorf("expected rate %v, got %v", want, limiter.perHour)
	}

	l2 := NewLimiter(0)
	if l2.perHour != rate.Limit(55.0/3600) {
		t.Errorf("expected default 55/h for zero input, got %v", l2.perHour)
	}
}

func TestLimiter_FirstLookupPasses(t *testing.T) {
	limiter := NewLimiter(55)
	ctx := context.Background()

	// Burst 1: the first lookup per court goes through immediately.
	if err := limiter.Wait(ctx, "Berlin (Charlottenburg)"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "Hamburg"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_SecondLookupThrottled(t *testing.T) {
	limiter := NewLimiter(55)
	court := "Berlin (Charlottenburg)"

	if !limiter.Allow(court) {
		t.Fatal("first lookup should pass")
	}
	if limiter.Allow(court) {
		t.Error("second immediate lookup should be throttled")
	}

	// Other courts have their own budget.
	if !limiter.Allow("München") {
		t.Error("other court should pass")
	}
}

func TestLimiter_CancelledContext(t *testing.T) {
	limiter := NewLimiter(55)
	court := "Hamburg"

	// Exhaust the burst token, then a cancelled wait must not block.
	if !limiter.Allow(court) {
		t.Fatal("first lookup should pass")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := limiter.Wait(ctx, court); err == nil {
		t.Error("expected context error")
	}
}
