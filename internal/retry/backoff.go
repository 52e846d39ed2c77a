package retry

import (
	"math"
	"math/rand"
	"time"
)

// BackoffStrategy calculates the delay before the next retry attempt.
type BackoffStrategy interface {
	// NextDelay returns the duration to wait before the next attempt.
	// attempt is zero-indexed (0 = first retry).
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the maximum number of retries (0 = no retries).
	MaxAttempts() int
}

// ExponentialBackoff doubles the delay after each attempt, capped at a
// maximum, with +/- jitter.
type ExponentialBackoff struct {
	initialDelay time.Duration
	maxDelay     time.Duration
	maxAttempts  int
	jitter       float64
	jitterFunc   func() float64
}

// BackoffOption is a functional option for configuring ExponentialBackoff.
type BackoffOption func(*ExponentialBackoff)

// WithInitialDelay sets the delay before the first retry.
func WithInitialDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.initialDelay = d
	}
}

// WithMaxDelay caps the delay between attempts.
func WithMaxDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.maxDelay = d
	}
}

// WithJitter sets the jitter factor in [0, 1].
func WithJitter(j float64) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.jitter = j
	}
}

// WithJitterFunc replaces the random source, for deterministic tests.
func WithJitterFunc(f func() float64) BackoffOption {
	return func(b *ExponentialBackoff) {
		b.jitterFunc = f
	}
}

// NewExponentialBackoff creates a backoff tuned for local disk writes:
// 20ms first delay, 500ms cap, 10% jitter.
func NewExponentialBackoff(maxAttempts int, opts ...BackoffOption) *ExponentialBackoff {
	b := &ExponentialBackoff{
		initialDelay: 20 * time.Millisecond,
		maxDelay:     500 * time.Millisecond,
		maxAttempts:  maxAttempts,
		jitter:       0.1,
		jitterFunc:   rand.Float64,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NextDelay returns initialDelay * 2^attempt, capped and jittered.
func (b *ExponentialBackoff) NextDelay(attempt int) time.Duration {
	delay := float64(b.initialDelay) * math.Pow(2, float64(attempt))
	if delay > float64(b.maxDelay) {
		delay = float64(b.maxDelay)
	}

	if b.jitter > 0 {
		// map [0,1) to [-1,1)
		offset := (b.jitterFunc() - 0.5) * 2.0
		delay *= 1.0 + b.jitter*offset
	}
	return time.Duration(delay)
}

// MaxAttempts returns the maximum number of retries.
func (b *ExponentialBackoff) MaxAttempts() int {
	return b.maxAttempts
}
