package retry

import (
	"context"
	"time"
)

// Executor runs an operation, retrying transient failures with backoff.
//
// An Executor is safe for concurrent use. WithOnRetry returns a copy, so the
// original is never modified.
type Executor struct {
	classifier ErrorClassifier
	strategy   BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor.
// Panics if classifier or strategy is nil.
func NewExecutor(classifier ErrorClassifier, strategy BackoffStrategy) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{
		classifier: classifier,
		strategy:   strategy,
	}
}

// WithOnRetry returns a copy of e that calls callback before each retry.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs operation until it succeeds, fails fatally, the retries are
// used up, or ctx is done. It returns the last error.
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	lastErr := operation(ctx)
	if lastErr == nil || !e.classifier.IsTransient(lastErr) {
		return lastErr
	}

	for attempt := 0; attempt < e.strategy.MaxAttempts(); attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		delay := e.strategy.NextDelay(attempt)
		if e.onRetry != nil {
			e.onRetry(attempt, lastErr, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		lastErr = operation(ctx)
		if lastErr == nil || !e.classifier.IsTransient(lastErr) {
			return lastErr
		}
	}

	return lastErr
}
