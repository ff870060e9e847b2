// Package resilience wraps outbound provider calls with a circuit breaker so
// a dead provider sheds load to the local fallback paths instead of stalling
// every request on timeouts.
package resilience

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

const (
	breakerMinRequests  = 5
	breakerFailureRatio = 0.6
	breakerOpenTimeout  = 30 * time.Second
)

// Breaker guards one named outbound dependency.
type Breaker struct {
	cb *gobreaker.CircuitBreaker[struct{}]
}

// NewBreaker builds a breaker that opens once breakerMinRequests have been
// seen and at least breakerFailureRatio of them failed, and probes again
// after breakerOpenTimeout.
func NewBreaker(name string) *Breaker {
	settings := gobreaker.Settings{
		Name:    name,
		Timeout: breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < breakerMinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= breakerFailureRatio
		},
	}
	return &Breaker{cb: gobreaker.NewCircuitBreaker[struct{}](settings)}
}

// Do runs fn through the breaker. While the breaker is open, fn is not
// invoked and the breaker's error is returned immediately.
func (b *Breaker) Do(fn func() error) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
