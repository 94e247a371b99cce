package stream

import "fmt"

// Chained plays a until it ends, then b.
//
// The switch to b and b's first frame happen in the same NextFrame call so no
// frame is dropped on the transition. Reset only rewinds a; b is reset when
// the chain next reaches it.
type Chained struct {
	a       Terminating
	b       Animation
	current bool
}

type terminatingChained struct {
	*Chained
}

// Chain plays a and then b. The chain is Terminating when b is, and then
// ends only once b has ended.
func Chain(a Terminating, b Animation) Animation {
	c := &Chained{a: a, b: b}
	if _, ok := b.(Terminating); ok {
		return terminatingChained{c}
	}
	return c
}

// ChainAll folds steps left to right into one chain. Every step except the
// last must be Terminating.
func ChainAll(first Terminating, rest ...Animation) (Animation, error) {
	var out Animation = first
	for i, next := range rest {
		head, ok := out.(Terminating)
		if !ok {
			return nil, fmt.Errorf("chain step %d (%v) never ends", i, out)
		}
		out = Chain(head, next)
	}
	return out, nil
}

func (c *Chained) NextFrame(f *Frame) {
	if !c.current {
		if c.a.Ended() {
			log.Debug("switching chain animation", "from", c.a, "to", c.b)
			c.current = true
			c.b.Reset()
		} else {
			c.a.NextFrame(f)
		}
	}

	if c.current {
		c.b.NextFrame(f)
	}
}

func (c *Chained) Reset() {
	c.a.Reset()
	c.current = false
}

// Active returns the animation currently being played.
func (c *Chained) Active() Animation {
	if c.current {
		return c.b
	}
	return c.a
}

func (c *Chained) String() string {
	return fmt.Sprintf("Chain(%v, %v)", c.a, c.b)
}

func (t terminatingChained) Ended() bool {
	return t.current && t.b.(Terminating).Ended()
}
