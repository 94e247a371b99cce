package stream

import (
	"fmt"
	"time"
)

// TimeLimited bounds an animation by wall time. It ends once the duration
// has elapsed, or earlier if the inner animation reports a natural end.
type TimeLimited struct {
	inner    Animation
	duration time.Duration
	clock    Clock
	started  time.Time
}

// WithDuration wraps a so that it ends after d.
func WithDuration(a Animation, d time.Duration, opts ...Option) *TimeLimited {
	o := buildOptions(opts)
	return &TimeLimited{
		inner:    a,
		duration: d,
		clock:    o.clock,
		started:  o.clock.Now(),
	}
}

func (t *TimeLimited) NextFrame(f *Frame) {
	t.inner.NextFrame(f)
}

// Reset resets the inner animation and restarts the time budget.
func (t *TimeLimited) Reset() {
	t.inner.Reset()
	t.started = t.clock.Now()
}

// Ended reports whether the time budget is spent or the inner animation is done.
func (t *TimeLimited) Ended() bool {
	if t.clock.Now().Sub(t.started) >= t.duration {
		return true
	}
	return MaybeEnded(t.inner)
}

func (t *TimeLimited) String() string {
	return fmt.Sprintf("Duration(%v, %v)", t.inner, t.duration)
}
