// Package cancel provides the stop signal polled by sequence-check
// workers.
//
// A sweep checks millions of short operation sequences per second per
// worker. Selecting on ctx.Done() between sequences would cost more than
// a short sequence itself, so workers poll a Flag instead and a single
// watcher goroutine translates context cancellation into a flag store.
package cancel

// Canceler provides cancellation signaling to workers.
//
// Implementations must be safe for concurrent use:
//   - Multiple goroutines may call Done() concurrently
//   - Cancel() may be called concurrently with Done()
type Canceler interface {
	// Done returns true if cancellation has been triggered.
	Done() bool

	// Cancel triggers cancellation. Safe to call multiple times.
	Cancel()
}
