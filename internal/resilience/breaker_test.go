package resilience

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker/v2"
)

func TestBreakerPassesThroughSuccess(t *testing.T) {
	b := NewBreaker("test")
	calls := 0
	err := b.Do(func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("fn not invoked")
	}
}

func TestBreakerPassesThroughFailure(t *testing.T) {
	b := NewBreaker("test")
	boom := errors.New("boom")
	if err := b.Do(func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected the fn error back, got %v", err)
	}
}

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	b := NewBreaker("test")
	boom := errors.New("boom")

	for i := 0; i < breakerMinRequests; i++ {
		if err := b.Do(func() error { return boom }); !errors.Is(err, boom) {
			t.Fatalf("attempt %d: expected fn error, got %v", i, err)
		}
	}

	// The breaker is open now; the fn must not run.
	invoked := false
	err := b.Do(func() error {
		invoked = true
		return nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected ErrOpenState, got %v", err)
	}
	if invoked {
		t.Fatal("fn must not run while the breaker is open")
	}
}

func TestBreakerStaysClosedBelowThreshold(t *testing.T) {
	b := NewBreaker("test")
	boom := errors.New("boom")

	for i := 0; i < breakerMinRequests-1; i++ {
		_ = b.Do(func() error { return boom })
	}

	invoked := false
	_ = b.Do(func() error {
		invoked = true
		return nil
	})
	if !invoked {
		t.Fatal("breaker opened before reaching the request minimum")
	}
}
