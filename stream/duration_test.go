package stream

import (
	"testing"
	"time"
)

func TestWithDurationEnds(t *testing.T) {
	clock := newFakeClock()
	inner := &endless{name: "inner"}
	d := WithDuration(inner, 5*time.Second, WithClock(clock))
	f := NewFrame()

	for i := 0; i < 5; i++ {
		if d.Ended() {
			t.Fatalf("ended after %ds", i)
		}
		d.NextFrame(f)
		clock.Advance(time.Second)
	}
	if !d.Ended() {
		t.Error("expected the duration to end at 5s")
	}
	if inner.total != 5 {
		t.Errorf("expected 5 advances, got %d", inner.total)
	}
}

func TestWithDurationResetRestartsBudget(t *testing.T) {
	clock := newFakeClock()
	inner := &endless{name: "inner"}
	d := WithDuration(inner, 5*time.Second, WithClock(clock))

	clock.Advance(7 * time.Second)
	if !d.Ended() {
		t.Fatal("expected ended after 7s")
	}

	d.Reset()
	if d.Ended() {
		t.Error("expected a fresh budget after Reset")
	}
	if inner.resets != 1 {
		t.Errorf("expected the inner animation to be reset, got %d resets", inner.resets)
	}

	clock.Advance(4*time.Second + 999*time.Millisecond)
	if d.Ended() {
		t.Error("ended before the budget was spent")
	}
	clock.Advance(time.Millisecond)
	if !d.Ended() {
		t.Error("expected ended exactly at the budget")
	}
}

func TestWithDurationEndsWithInner(t *testing.T) {
	clock := newFakeClock()

	s := &soft{endless: endless{name: "soft"}}
	d := WithDuration(s, time.Hour, WithClock(clock))
	if d.Ended() {
		t.Fatal("ended too early")
	}
	s.done = true
	if !d.Ended() {
		t.Error("expected a soft end of the inner animation to end the duration")
	}

	f := newFinite("finite", 2, nil)
	d = WithDuration(f, time.Hour, WithClock(clock))
	d.NextFrame(NewFrame())
	d.NextFrame(NewFrame())
	if !d.Ended() {
		t.Error("expected the inner animation's end to end the duration")
	}
}
