// Package preview shows the cube in the terminal while it runs.
//
// The render loop and the Bubble Tea UI share one animation tree through a
// stream.Shared handle: the loop takes the write lock once per step, the UI
// reads the tree under the read lock and resets it under the write lock.
package preview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers a redraw.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the given rate.
func tickCmd(rate int) tea.Cmd {
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
