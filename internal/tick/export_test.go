package tick

import "time"

// NewBatchWithClock exposes the injectable clock to tests.
func NewBatchWithClock(interval time.Duration, every int, now func() time.Time) *Batch {
	return newBatch(interval, every, now)
}
