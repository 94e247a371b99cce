package stream

// An Animation implements a way to render a specific animation.
//
// NextFrame advances the animation by one time step, writing into the shared
// frame. It may touch every voxel or only some of them. Reset returns the
// animation to the state it had just after construction.
type Animation interface {
	NextFrame(f *Frame)
	Reset()
}

// A Terminating animation has a well-defined end.
type Terminating interface {
	Animation
	Ended() bool
}

// A MaybeTerminating animation can report that it has reached a natural
// stopping point, without promising that it ever will.
type MaybeTerminating interface {
	Animation
	MaybeEnded() bool
}

// MaybeEnded reports the soft termination signal of a. Hard-terminating
// animations forward to Ended; animations with neither capability never end.
func MaybeEnded(a Animation) bool {
	switch t := a.(type) {
	case Terminating:
		return t.Ended()
	case MaybeTerminating:
		return t.MaybeEnded()
	default:
		return false
	}
}
