// Package tui provides the Bubble Tea frontends: the animated walk, the
// run-history scoreboard and the SSH host that serves both.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the walk to its next redraw point.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after delay.
// A non-positive delay ticks immediately.
func tickCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg {
			return TickMsg(time.Now())
		}
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
