// Package retry provides automatic retry logic with exponential backoff
// for transient host I/O failures on the floppy drive.
//
// # Example Usage
//
//	executor := retry.NewExecutor(retry.NewIOErrorClassifier(), retry.NewExponentialBackoff(3))
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return writeImage()
//	})
//
// The ErrorClassifier decides which errors are worth another attempt; the
// BackoffStrategy decides how long to wait in between.
package retry
