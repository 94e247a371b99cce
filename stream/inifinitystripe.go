package stream

import (
	"fmt"
	"math/rand"

	"github.com/matt-g-everett/ledcube/stream/stripe"
)

// An InfinityStripe is an Animation that scrolls an endless sequence of
// random bands up through the cube, tilted along the diagonal.
type InfinityStripe struct {
	generator      *stripe.RandomStripeGenerator
	stripes        []stripe.Stripe
	current        float64
	layersPerFrame float64
	adjusted       bool
}

// NewInfinityStripe creates an instance of an InfinityStripe object.
func NewInfinityStripe(rng *rand.Rand, layersPerFrame float64) *InfinityStripe {
	s := new(InfinityStripe)
	s.generator = stripe.NewRandomStripeGenerator(rng, nil)
	s.stripes = make([]stripe.Stripe, 0, 20)
	s.layersPerFrame = layersPerFrame
	s.adjusted = true
	s.current = 0

	return s
}

func (s *InfinityStripe) addStripe() stripe.Stripe {
	st := s.generator.CreateStripe()
	s.stripes = append(s.stripes, st)
	return st
}

// getStripe returns the stripe covering offset, measured in hundredths of a
// layer from the start of the first stripe, generating more as needed.
func (s *InfinityStripe) getStripe(offset float64) stripe.Stripe {
	var end float64
	for _, st := range s.stripes {
		end += float64(st.Length)
		if offset < end {
			return st
		}
	}

	for {
		st := s.addStripe()
		end += float64(st.Length)
		if offset < end {
			return st
		}
	}
}

// NextFrame paints the bands and scrolls them.
func (s *InfinityStripe) NextFrame(f *Frame) {
	// Cull stripes that have passed
	toRemove := 0
	for _, st := range s.stripes {
		if s.current < float64(st.Length) {
			break
		}
		toRemove++
		s.current -= float64(st.Length)
	}
	if toRemove > 0 {
		s.stripes = s.stripes[toRemove:]
	}

	f.EachMut(func(x, y, z uint8, v *uint8) {
		offset := float64(y)
		if s.adjusted {
			offset += 0.25 * float64(x+z)
		}
		*v = luminance(s.getStripe(s.current + offset*100).Colour)
	})

	s.current += s.layersPerFrame * 100
}

func (s *InfinityStripe) Reset() {
	s.stripes = s.stripes[:0]
	s.current = 0
}

func (s *InfinityStripe) String() string {
	return fmt.Sprintf("infinitystripe(%g)", s.layersPerFrame)
}
