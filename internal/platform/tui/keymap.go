package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/physics"
)

// KeyMap defines the key bindings of a session.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "right down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to per-seat actions.
type KeyMapper struct {
	keys KeyMap
	// solo is the only keyboard seat, if exactly one; both key sets then
	// drive it.
	solo physics.Side
}

// NewKeyMapper creates a mapper. solo is SideNone when both or neither seat
// is keyboard driven.
func NewKeyMapper(keys KeyMap, solo physics.Side) *KeyMapper {
	return &KeyMapper{keys: keys, solo: solo}
}

// MapKey translates a key message into a seat and an action. Actions that
// are not tied to a seat come back with SideNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (physics.Side, core.Action) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return physics.SideNone, core.ActionQuit
	case key.Matches(msg, km.keys.Pause):
		return physics.SideNone, core.ActionPause
	case key.Matches(msg, km.keys.Restart):
		return physics.SideNone, core.ActionRestart
	case key.Matches(msg, km.keys.LeftUp):
		return km.seat(physics.SideLeft), core.ActionUp
	case key.Matches(msg, km.keys.LeftDown):
		return km.seat(physics.SideLeft), core.ActionDown
	case key.Matches(msg, km.keys.RightUp):
		return km.seat(physics.SideRight), core.ActionUp
	case key.Matches(msg, km.keys.RightDown):
		return km.seat(physics.SideRight), core.ActionDown
	}
	return physics.SideNone, core.ActionNone
}

func (km *KeyMapper) seat(side physics.Side) physics.Side {
	if km.solo != physics.SideNone {
		return km.solo
	}
	return side
}
