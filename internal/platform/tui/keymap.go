package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is what a key press asks the walk view to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionFaster
	ActionSlower
	ActionScreenshot
)

// WalkKeyMap defines the key bindings while the walk is animating.
type WalkKeyMap struct {
	Quit       key.Binding
	Pause      key.Binding
	Faster     key.Binding
	Slower     key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k WalkKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Faster, k.Slower, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k WalkKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Faster, k.Slower},
		{k.Screenshot, k.Quit},
	}
}

// DefaultWalkKeyMap returns default key bindings.
func DefaultWalkKeyMap() WalkKeyMap {
	return WalkKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "close"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey translates a key message to an Action.
func (k WalkKeyMap) MapKey(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Pause):
		return ActionPause
	case key.Matches(msg, k.Faster):
		return ActionFaster
	case key.Matches(msg, k.Slower):
		return ActionSlower
	case key.Matches(msg, k.Screenshot):
		return ActionScreenshot
	}
	return ActionNone
}
