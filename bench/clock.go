package bench

import "time"

// Clock supplies monotonic tick counts. Only differences between two
// readings are meaningful.
type Clock interface {
	Now() int64
}

// MonotonicClock reports nanoseconds elapsed since its creation, read
// from the runtime's monotonic clock.
type MonotonicClock struct {
	epoch time.Time
}

// NewMonotonicClock creates a clock whose epoch is the current instant.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{epoch: time.Now()}
}

// Now returns the nanoseconds elapsed since the epoch.
func (c *MonotonicClock) Now() int64 {
	return int64(time.Since(c.epoch))
}
