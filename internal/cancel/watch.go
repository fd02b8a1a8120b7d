package cancel

import "context"

// WatchContext returns a Flag that is cancelled when ctx is done.
//
// The returned stop function releases the watcher goroutine; it must be
// called once the flag is no longer polled. Calling stop does not cancel
// the flag.
func WatchContext(ctx context.Context) (*Flag, func()) {
	f := NewFlag()
	if ctx.Err() != nil {
		f.Cancel()
		return f, func() {}
	}

	stop := context.AfterFunc(ctx, f.Cancel)
	return f, func() { stop() }
}
