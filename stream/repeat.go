package stream

import "fmt"

// Repeated replays an animation a fixed number of extra times.
type Repeated struct {
	inner Terminating
	loops int
	count int
}

// Repeat plays a once and then n more times. It ends when the last repeat
// has run to completion.
func Repeat(a Terminating, n int) *Repeated {
	return &Repeated{inner: a, loops: n}
}

// NextFrame restarts the inner animation if it has ended and repeats remain,
// then advances it in the same call.
func (r *Repeated) NextFrame(f *Frame) {
	if r.inner.Ended() && r.count < r.loops {
		r.inner.Reset()
		r.count++
		log.Debug("repeating animation", "inner", r.inner, "count", r.count)
	}

	r.inner.NextFrame(f)
}

func (r *Repeated) Reset() {
	r.inner.Reset()
	r.count = 0
}

func (r *Repeated) Ended() bool {
	return r.count >= r.loops && r.inner.Ended()
}

// Count returns the number of repeats started so far.
func (r *Repeated) Count() int {
	return r.count
}

func (r *Repeated) String() string {
	return fmt.Sprintf("Repeat(%v, %d)", r.inner, r.loops)
}
