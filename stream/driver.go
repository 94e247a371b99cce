package stream

import (
	"context"
)

// A Stepper restarts itself if it has ended and advances, as one operation.
// Shared is a Stepper.
type Stepper interface {
	Step(f *Frame)
}

// Driver owns the frame buffer and pushes one animation through a backend.
//
// It does no pacing of its own: frame rate and durations come from the
// combinators wrapped around the animation.
type Driver struct {
	animation Animation
	backend   Backend
	frame     *Frame
	steps     uint64
}

// NewDriver creates a Driver with a blank frame.
func NewDriver(a Animation, b Backend) *Driver {
	d := new(Driver)
	d.animation = a
	d.backend = b
	d.frame = NewFrame()

	return d
}

// Step restarts the animation if it reports an end, advances it by one frame
// and hands the frame to the backend.
func (d *Driver) Step() {
	if s, ok := d.animation.(Stepper); ok {
		s.Step(d.frame)
	} else {
		d.advance()
	}
	d.backend.DisplayFrame(d.frame)
	d.steps++
}

func (d *Driver) advance() {
	if MaybeEnded(d.animation) {
		log.Debug("restarting animation", "animation", d.animation)
		d.animation.Reset()
	}

	d.animation.NextFrame(d.frame)
}

// Reset rewinds the animation and clears the frame.
func (d *Driver) Reset() {
	d.animation.Reset()
	d.frame.Zero()
}

// Run steps until ctx is cancelled.
func (d *Driver) Run(ctx context.Context) {
	log.Info("driver running", "animation", d.animation)
	for {
		select {
		case <-ctx.Done():
			log.Info("driver stopped", "steps", d.steps)
			return
		default:
		}
		d.Step()
	}
}

// Frame returns the frame buffer. It is only safe to read between steps.
func (d *Driver) Frame() *Frame {
	return d.frame
}

// Steps returns the number of completed steps.
func (d *Driver) Steps() uint64 {
	return d.steps
}
