package stream

import "time"

// Clock supplies wall time to the time-based combinators.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now.
var SystemClock Clock = systemClock{}

type options struct {
	clock Clock
}

// Option configures WithFPS and WithDuration.
type Option func(*options)

// WithClock replaces the system clock, mostly for tests and replays.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func buildOptions(opts []Option) options {
	o := options{clock: SystemClock}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
