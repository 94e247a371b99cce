package stream

import (
	"container/list"
	"fmt"
	"math"
	"math/rand"

	"github.com/fogleman/ease"
)

type streakParticle struct {
	x, z      uint8
	level     float64
	start     float64
	current   float64
	increment float64
	length    float64
	gainRate  float64
}

func newStreakParticle(rng *rand.Rand) *streakParticle {
	p := new(streakParticle)
	p.x = uint8(rng.Intn(Size))
	p.z = uint8(rng.Intn(Size))
	p.level = 255
	p.start = Size
	p.current = Size
	p.increment = -(0.15 + rng.Float64()*0.2)
	p.length = 3
	p.gainRate = 0.25
	return p
}

// incrementPosition moves the head down and reports whether any of the tail
// is still inside the cube.
func (p *streakParticle) incrementPosition() bool {
	p.current += p.increment
	return p.current+p.length > 0
}

func (p *streakParticle) calcEaseDistance() float64 {
	return math.Abs(p.current-p.start) * p.gainRate
}

func (p *streakParticle) overallGain(easeDistance float64) float64 {
	if easeDistance > 2 {
		return 0
	} else if easeDistance > 1 {
		easeDistance = 1 - (easeDistance - 1)
	}

	return ease.InOutQuad(easeDistance)
}

func (p *streakParticle) addStreak(f *Frame) {
	gain := p.overallGain(math.Min(p.calcEaseDistance(), 1))
	head := math.Floor(p.current)
	for i := 0.0; i < p.length; i++ {
		y := head + i
		if y < 0 || y >= Size {
			continue
		}
		v := uint8(p.level * gain * (1 - i/p.length))
		if v > f.Get(p.x, uint8(y), p.z) {
			f.Set(p.x, uint8(y), p.z, v)
		}
	}
}

// A Streak is an Animation that drops streaks down random columns of the
// cube, fading them in as they fall.
//
// With a non-zero limit it is soft-terminating: once limit streaks have been
// spawned and all of them have left the cube it reports MaybeEnded, which
// gives a clean cut point between streaks.
type Streak struct {
	rng          *rand.Rand
	streakChance int32
	limit        int
	spawned      int
	particles    *list.List
}

// NewStreak creates an instance of a Streak object.
func NewStreak(rng *rand.Rand, streakChance int32, limit int) *Streak {
	s := new(Streak)
	s.rng = rng
	s.streakChance = streakChance
	s.limit = limit
	s.particles = list.New()

	return s
}

// NextFrame moves every streak down and maybe starts a new one.
func (s *Streak) NextFrame(f *Frame) {
	f.Zero()

	toDelete := make([]*list.Element, 0, s.particles.Len())
	for e := s.particles.Front(); e != nil; e = e.Next() {
		particle := e.Value.(*streakParticle)
		if particle.incrementPosition() {
			particle.addStreak(f)
		} else {
			toDelete = append(toDelete, e)
		}
	}

	for _, e := range toDelete {
		s.particles.Remove(e)
	}

	if (s.limit == 0 || s.spawned < s.limit) && s.rng.Int31n(s.streakChance) == 0 {
		s.particles.PushBack(newStreakParticle(s.rng))
		s.spawned++
	}
}

func (s *Streak) Reset() {
	s.particles.Init()
	s.spawned = 0
}

// MaybeEnded reports whether the streak budget is used up and the cube is
// clear.
func (s *Streak) MaybeEnded() bool {
	return s.limit > 0 && s.spawned >= s.limit && s.particles.Len() == 0
}

func (s *Streak) String() string {
	return fmt.Sprintf("streak(1/%d, limit %d)", s.streakChance, s.limit)
}
