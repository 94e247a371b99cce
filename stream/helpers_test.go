package stream

import "time"

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// endless counts calls and never ends.
type endless struct {
	name     string
	trace    *[]string
	total    int
	advances int
	resets   int
}

func (e *endless) NextFrame(f *Frame) {
	e.total++
	e.advances++
	if e.trace != nil {
		*e.trace = append(*e.trace, e.name)
	}
}

func (e *endless) Reset() {
	e.resets++
	e.advances = 0
}

func (e *endless) String() string { return e.name }

// finite ends after endAfter advances since its last reset.
type finite struct {
	endless
	endAfter int
}

func newFinite(name string, endAfter int, trace *[]string) *finite {
	return &finite{endless: endless{name: name, trace: trace}, endAfter: endAfter}
}

func (f *finite) Ended() bool { return f.advances >= f.endAfter }

// soft reports MaybeEnded when told to.
type soft struct {
	endless
	done bool
}

func (s *soft) MaybeEnded() bool { return s.done }
