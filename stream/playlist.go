package stream

import (
	"fmt"
	"math/rand"
)

// BuildPlaylist turns playlist steps into one animation tree. Each step gets
// its own generator seeded from seed and the step index, then is wrapped by
// WithFPS, WithDuration and Repeat as configured, and the steps are chained
// in order. Every step but the last must end on its own or have a duration.
func BuildPlaylist(steps []Step, seed int64, opts ...Option) (Animation, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("playlist is empty")
	}

	built := make([]Animation, 0, len(steps))
	for i, s := range steps {
		a, err := buildStep(s, rand.New(rand.NewSource(seed+int64(i))), opts)
		if err != nil {
			return nil, fmt.Errorf("playlist step %d: %w", i, err)
		}
		built = append(built, a)
	}

	if len(built) == 1 {
		return built[0], nil
	}

	first, ok := built[0].(Terminating)
	if !ok {
		return nil, fmt.Errorf("playlist step 0 (%s) never ends, give it a duration", steps[0].Animation)
	}
	for i := 1; i < len(built)-1; i++ {
		if _, ok := built[i].(Terminating); !ok {
			return nil, fmt.Errorf("playlist step %d (%s) never ends, give it a duration", i, steps[i].Animation)
		}
	}
	return ChainAll(first, built[1:]...)
}

func buildStep(s Step, rng *rand.Rand, opts []Option) (Animation, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	a, err := NewAnimation(s.Animation, rng)
	if err != nil {
		return nil, err
	}
	if s.FPS > 0 {
		a = WithFPS(a, s.FPS, opts...)
	}
	if s.Duration > 0 {
		a = WithDuration(a, s.Duration, opts...)
	}
	if s.Repeat > 0 {
		t, ok := a.(Terminating)
		if !ok {
			return nil, fmt.Errorf("%s never ends and cannot repeat, give it a duration", s.Animation)
		}
		a = Repeat(t, s.Repeat)
	}
	return a, nil
}
