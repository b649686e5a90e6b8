// Package latency simulates network round trips for the in-memory gateway.
package latency

import (
	"context"
	"sync"
	"time"
)

// Sleeper blocks for a simulated round trip.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Real waits on a timer and gives up early when ctx is done.
type Real struct{}

func (Real) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// None returns immediately. Cancellation is still observed.
type None struct{}

func (None) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Recorder returns immediately and remembers every requested duration.
type Recorder struct {
	mu    sync.Mutex
	calls []time.Duration
}

func (r *Recorder) Sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.calls = append(r.calls, d)
	r.mu.Unlock()
	return ctx.Err()
}

// Calls returns the recorded durations in call order.
func (r *Recorder) Calls() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]time.Duration, len(r.calls))
	copy(out, r.calls)
	return out
}

// Total returns the sum of the recorded durations.
func (r *Recorder) Total() time.Duration {
	var total time.Duration
	for _, d := range r.Calls() {
		total += d
	}
	return total
}
