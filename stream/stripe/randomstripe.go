package stripe

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledcube/util"
)

// Stripe is a band of one colour, Length hundredths of a layer long.
type Stripe struct {
	Colour colorful.Color
	Length int32
}

// RandomStripeGenerator produces stripes of random length, either from a
// palette or of random hue.
type RandomStripeGenerator struct {
	rng       *rand.Rand
	palette   []colorful.Color
	current   int
	stripeMin int32
	stripeMax int32
}

// NewRandomStripeGenerator creates a generator. A nil palette picks random hues.
func NewRandomStripeGenerator(rng *rand.Rand, palette []colorful.Color) *RandomStripeGenerator {
	g := new(RandomStripeGenerator)
	g.rng = rng
	g.palette = palette
	g.current = -1
	g.stripeMax = 400
	g.stripeMin = 100
	return g
}

// CreateStripe returns the next stripe.
func (g *RandomStripeGenerator) CreateStripe() Stripe {
	var colour colorful.Color
	if len(g.palette) == 0 {
		colour = colorful.Hsl(g.rng.Float64()*360.0, util.RandomiseSaturation(g.rng, 0.6, 1.0), g.rng.Float64()*0.5)
	} else if len(g.palette) == 1 {
		colour = g.palette[0]
	} else {
		// Choose a new colour that's different from the previous colour
		for {
			newCurrent := g.rng.Intn(len(g.palette))
			if newCurrent != g.current {
				g.current = newCurrent
				break
			}
		}

		colour = g.palette[g.current]
	}

	stripeLength := g.rng.Int31n(g.stripeMax-g.stripeMin) + g.stripeMin
	return Stripe{colour, stripeLength}
}
