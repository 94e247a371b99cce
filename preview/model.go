package preview

import (
	"fmt"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matt-g-everett/ledcube/stream"
)

const redrawRate = 20

// Model is the Bubble Tea model of the inspector.
type Model struct {
	shared *stream.Shared
	snap   *stream.Snapshot
	paused *atomic.Bool

	frame    stream.Frame
	frames   uint64
	tree     string
	ended    bool
	resets   int
	quitting bool
}

// NewModel creates a model reading frames from snap and inspecting shared.
func NewModel(shared *stream.Shared, snap *stream.Snapshot, paused *atomic.Bool) Model {
	return Model{
		shared: shared,
		snap:   snap,
		paused: paused,
	}
}

// Init starts the redraw ticks.
func (m Model) Init() tea.Cmd {
	return tickCmd(redrawRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "r":
		m.shared.Edit(func(a stream.Animation) {
			a.Reset()
		})
		m.resets++
	case "p", " ":
		m.paused.Store(!m.paused.Load())
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.frames = m.snap.Latest(&m.frame)
	m.ended = m.shared.MaybeEnded()
	m.shared.View(func(a stream.Animation) {
		m.tree = fmt.Sprint(a)
	})
	return m, tickCmd(redrawRate)
}

// View renders the cube and the inspector panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ledcube preview"))
	b.WriteString("\n\n")
	b.WriteString(renderCube(&m.frame))
	b.WriteString("\n\n")

	state := "running"
	if m.paused.Load() {
		state = "paused"
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("animation: ")+m.tree,
		labelStyle.Render("frames:    ")+fmt.Sprint(m.frames),
		labelStyle.Render("ended:     ")+fmt.Sprint(m.ended),
		labelStyle.Render("resets:    ")+fmt.Sprint(m.resets),
		labelStyle.Render("state:     ")+state,
	))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("r reset • p pause • q quit"))
	return b.String()
}
