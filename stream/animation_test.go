package stream

import "testing"

func TestMaybeEnded(t *testing.T) {
	if MaybeEnded(&endless{}) {
		t.Error("an animation without termination must never report ended")
	}

	f := newFinite("a", 1, nil)
	if MaybeEnded(f) {
		t.Error("finite reported ended before advancing")
	}
	f.NextFrame(NewFrame())
	if !MaybeEnded(f) {
		t.Error("MaybeEnded should forward to Ended")
	}

	s := &soft{}
	if MaybeEnded(s) {
		t.Error("soft reported ended early")
	}
	s.done = true
	if !MaybeEnded(s) {
		t.Error("MaybeEnded should forward to MaybeEnded")
	}
}
