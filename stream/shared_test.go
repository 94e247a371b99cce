package stream

import (
	"sync"
	"testing"
	"time"
)

func TestSharedReleasesLockAfterPanic(t *testing.T) {
	s := NewShared(&endless{name: "inner"})

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the panic to propagate")
			}
		}()
		s.Edit(func(Animation) {
			panic("boom")
		})
	}()

	done := make(chan struct{})
	go func() {
		s.NextFrame(NewFrame())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("NextFrame blocked after a panicking Edit")
	}
}

func TestSharedConcurrentAccess(t *testing.T) {
	inner := &endless{name: "inner"}
	s := NewShared(inner)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		f := NewFrame()
		for i := 0; i < 1000; i++ {
			s.NextFrame(f)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.View(func(a Animation) {
				_ = a.(*endless).total
			})
		}
	}()
	wg.Wait()

	s.Edit(func(a Animation) {
		a.Reset()
	})
	if inner.total != 1000 || inner.resets != 1 {
		t.Errorf("total=%d resets=%d, expected 1000 and 1", inner.total, inner.resets)
	}
}

func TestSharedMaybeEnded(t *testing.T) {
	inner := &soft{}
	s := NewShared(inner)
	if s.MaybeEnded() {
		t.Error("ended too early")
	}
	inner.done = true
	if !s.MaybeEnded() {
		t.Error("expected MaybeEnded to forward")
	}
}

// lockedCheck records any call made while the write lock is not held.
type lockedCheck struct {
	soft
	shared   *Shared
	unlocked []string
}

func (l *lockedCheck) check(call string) {
	if l.shared.mu.TryRLock() {
		l.shared.mu.RUnlock()
		l.unlocked = append(l.unlocked, call)
	}
}

func (l *lockedCheck) MaybeEnded() bool {
	l.check("MaybeEnded")
	return l.soft.MaybeEnded()
}

func (l *lockedCheck) Reset() {
	l.check("Reset")
	l.soft.Reset()
}

func (l *lockedCheck) NextFrame(f *Frame) {
	l.check("NextFrame")
	l.soft.NextFrame(f)
}

func TestDriverStepsSharedUnderOneWriteLock(t *testing.T) {
	inner := &lockedCheck{soft: soft{done: true}}
	s := NewShared(inner)
	inner.shared = s

	NewDriver(s, NullBackend{}).Step()

	if len(inner.unlocked) != 0 {
		t.Errorf("called without the write lock: %v", inner.unlocked)
	}
	if inner.resets != 1 || inner.total != 1 {
		t.Errorf("resets=%d advances=%d, expected 1 and 1", inner.resets, inner.total)
	}
}
