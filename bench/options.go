package bench

import "math"

// Default sampling range: f = 1, 2, …, 9999.
const (
	DefaultStart float32 = 1
	DefaultStop  float32 = 10000
	DefaultStep  float32 = 1
)

// Config defines the sampled range and the timing source.
type Config struct {
	// Start is the first input. Inputs run Start, Start+Step, … while
	// below Stop.
	Start float32
	Stop  float32
	Step  float32

	Clock Clock

	// Observer, if set, receives every sample after it has been written.
	Observer func(Sample)
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the standard 9999-sample configuration backed by a
// MonotonicClock.
func DefaultConfig() Config {
	return Config{
		Start: DefaultStart,
		Stop:  DefaultStop,
		Step:  DefaultStep,
		Clock: NewMonotonicClock(),
	}
}

// WithClock replaces the timing source.
func WithClock(c Clock) Option {
	return func(cfg *Config) {
		if c != nil {
			cfg.Clock = c
		}
	}
}

// WithRange sets the sampled inputs. Invalid ranges (non-positive start
// or step, stop not above start, step too small to advance a float32
// near stop) are ignored.
func WithRange(start, stop, step float32) Option {
	return func(cfg *Config) {
		if validRange(start, stop, step) {
			cfg.Start = start
			cfg.Stop = stop
			cfg.Step = step
		}
	}
}

// WithObserver registers fn to receive every sample.
func WithObserver(fn func(Sample)) Option {
	return func(cfg *Config) {
		cfg.Observer = fn
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// validRange requires step to be at least one ulp of stop. Ulps only
// shrink below stop, so f += step then advances every f < stop.
func validRange(start, stop, step float32) bool {
	if !(start > 0 && step > 0 && stop > start) {
		return false
	}
	ulp := math.Nextafter32(stop, float32(math.Inf(1))) - stop
	return step >= ulp
}

// Len returns the number of inputs the range produces, or 0 for a range
// that would not terminate.
func (c Config) Len() int {
	if !validRange(c.Start, c.Stop, c.Step) {
		return 0
	}
	n := 0
	for f := c.Start; f < c.Stop; f += c.Step {
		n++
	}
	return n
}
