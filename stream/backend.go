package stream

import "sync"

// A Backend displays frames. DisplayFrame must not keep f after it returns
// and should be quick enough not to stall the render loop.
type Backend interface {
	DisplayFrame(f *Frame)
}

// NullBackend discards every frame.
type NullBackend struct{}

func (NullBackend) DisplayFrame(*Frame) {}

// Fanout displays each frame on several backends in order.
type Fanout []Backend

func (fo Fanout) DisplayFrame(f *Frame) {
	for _, b := range fo {
		b.DisplayFrame(f)
	}
}

// Snapshot keeps a copy of the most recent frame for readers on other
// goroutines.
type Snapshot struct {
	mu     sync.Mutex
	frame  Frame
	frames uint64
}

// DisplayFrame copies f.
func (s *Snapshot) DisplayFrame(f *Frame) {
	s.mu.Lock()
	s.frame.CopyFrom(f)
	s.frames++
	s.mu.Unlock()
}

// Latest copies the most recent frame into dst and returns how many frames
// have been displayed in total.
func (s *Snapshot) Latest(dst *Frame) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	dst.CopyFrom(&s.frame)
	return s.frames
}
