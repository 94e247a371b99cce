package preview

import (
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matt-g-everett/ledcube/stream"
)

type countingAnimation struct {
	advances int
	resets   int
}

func (c *countingAnimation) NextFrame(f *stream.Frame) {
	c.advances++
	f.Set(0, 0, 0, uint8(c.advances))
}

func (c *countingAnimation) Reset() { c.resets++ }

func (c *countingAnimation) String() string { return "counting" }

func newTestModel() (Model, *countingAnimation, *stream.Driver, *atomic.Bool) {
	anim := &countingAnimation{}
	shared := stream.NewShared(anim)
	snap := new(stream.Snapshot)
	paused := new(atomic.Bool)
	return NewModel(shared, snap, paused), anim, stream.NewDriver(shared, snap), paused
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelResetKey(t *testing.T) {
	m, anim, _, _ := newTestModel()

	next, _ := m.Update(runeKey('r'))
	m = next.(Model)
	if anim.resets != 1 || m.resets != 1 {
		t.Errorf("resets: animation %d, model %d, expected 1", anim.resets, m.resets)
	}
}

func TestModelPauseKey(t *testing.T) {
	m, _, _, paused := newTestModel()

	next, _ := m.Update(runeKey('p'))
	if !paused.Load() {
		t.Fatal("expected p to pause")
	}
	if !strings.Contains(next.View(), "paused") {
		t.Error("view does not show the paused state")
	}

	next.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if paused.Load() {
		t.Error("expected space to resume")
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _, _ := newTestModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("expected an empty view while quitting")
	}
}

func TestModelTickReadsSnapshot(t *testing.T) {
	m, _, driver, _ := newTestModel()

	driver.Step()
	driver.Step()
	driver.Step()

	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
	if m.frames != 3 {
		t.Errorf("frames = %d, expected 3", m.frames)
	}
	if m.frame.Get(0, 0, 0) != 3 {
		t.Errorf("frame not copied from the snapshot, got %d", m.frame.Get(0, 0, 0))
	}
	if m.tree != "counting" {
		t.Errorf("tree = %q", m.tree)
	}

	view := m.View()
	for _, want := range []string{"ledcube preview", "y=7", "y=0", "counting"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
}

func TestShade(t *testing.T) {
	if shade(0).GetForeground() != shades[0].GetForeground() {
		t.Error("0 should map to black")
	}
	if shade(255).GetForeground() != shades[len(shades)-1].GetForeground() {
		t.Error("255 should map to the brightest shade")
	}
}
