package stream

import (
	"fmt"
	"sync"
)

// Shared lets one animation tree be driven by the render loop while another
// goroutine inspects or edits it.
//
// The render loop takes the write lock once per Step. Readers use View,
// editors use Edit; both release the lock on every exit path, panics
// included.
type Shared struct {
	mu   sync.RWMutex
	anim Animation
}

// NewShared wraps a for shared access.
func NewShared(a Animation) *Shared {
	return &Shared{anim: a}
}

func (s *Shared) NextFrame(f *Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anim.NextFrame(f)
}

// Step restarts the animation if it has ended and advances it, all under one
// write lock so no Edit can land between the check and the advance.
func (s *Shared) Step(f *Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if MaybeEnded(s.anim) {
		log.Debug("restarting animation", "animation", s.anim)
		s.anim.Reset()
	}
	s.anim.NextFrame(f)
}

func (s *Shared) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anim.Reset()
}

// MaybeEnded forwards the soft termination signal of the wrapped animation.
func (s *Shared) MaybeEnded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return MaybeEnded(s.anim)
}

// View calls fn with the animation held under the read lock. fn must not
// mutate it.
func (s *Shared) View(fn func(Animation)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.anim)
}

// Edit calls fn with the animation held under the write lock.
func (s *Shared) Edit(fn func(Animation)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.anim)
}

func (s *Shared) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprint(s.anim)
}
