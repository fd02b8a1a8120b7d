package cancel

import "sync/atomic"

// Flag is a Canceler backed by a single atomic.Bool.
// The zero value is ready to use and not cancelled.
type Flag struct {
	done atomic.Bool
}

// NewFlag creates a Flag that is not cancelled.
func NewFlag() *Flag {
	return &Flag{}
}

// Done reports whether Cancel has been called.
func (f *Flag) Done() bool {
	return f.done.Load()
}

// Cancel sets the flag. Subsequent calls are no-ops.
func (f *Flag) Cancel() {
	f.done.Store(true)
}
