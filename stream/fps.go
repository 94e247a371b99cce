package stream

import (
	"fmt"

	"golang.org/x/time/rate"
)

// FixedFPS advances its inner animation at most fps times per second. Calls
// that arrive too early leave the frame as it is; nothing ever sleeps.
type FixedFPS struct {
	inner   Animation
	fps     float64
	clock   Clock
	limiter *rate.Limiter
}

type terminatingFixedFPS struct {
	*FixedFPS
}

type maybeTerminatingFixedFPS struct {
	*FixedFPS
}

// WithFPS wraps a in a frame rate limiter. The result is Terminating or
// MaybeTerminating when a is. A non-positive fps disables limiting.
func WithFPS(a Animation, fps float64, opts ...Option) Animation {
	o := buildOptions(opts)

	limit := rate.Inf
	if fps > 0 {
		limit = rate.Limit(fps)
	}

	f := &FixedFPS{
		inner:   a,
		fps:     fps,
		clock:   o.clock,
		limiter: rate.NewLimiter(limit, 1),
	}
	// Spend the initial token so the first advance happens one interval
	// after construction.
	f.limiter.AllowN(f.clock.Now(), 1)

	switch a.(type) {
	case Terminating:
		return terminatingFixedFPS{f}
	case MaybeTerminating:
		return maybeTerminatingFixedFPS{f}
	}
	return f
}

// NextFrame advances the inner animation if a full interval has passed since
// the last advance.
func (f *FixedFPS) NextFrame(frame *Frame) {
	if f.limiter.AllowN(f.clock.Now(), 1) {
		f.inner.NextFrame(frame)
	}
}

// Reset resets the inner animation. The limiter keeps its timing baseline.
func (f *FixedFPS) Reset() {
	f.inner.Reset()
}

func (f *FixedFPS) String() string {
	return fmt.Sprintf("FPS(%v, %g)", f.inner, f.fps)
}

func (t terminatingFixedFPS) Ended() bool {
	return t.inner.(Terminating).Ended()
}

func (m maybeTerminatingFixedFPS) MaybeEnded() bool {
	return m.inner.(MaybeTerminating).MaybeEnded()
}
