package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// KeyMap defines the key bindings of the game screen.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Flap    key.Binding
	Start   key.Binding
	Restart key.Binding
	Pause   key.Binding
	Mute    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Restart, k.Pause, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Start, k.Restart},
		{k.Pause, k.Mute, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w", "enter"),
			key.WithHelp("space", "flap"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command translates a key to a game command.
// Keys that are not game input return CommandNone.
func (k KeyMap) Command(msg tea.KeyMsg) flappy.Command {
	switch {
	case key.Matches(msg, k.Flap):
		return flappy.CommandImpulse
	case key.Matches(msg, k.Start):
		return flappy.CommandStart
	case key.Matches(msg, k.Restart):
		return flappy.CommandRestart
	}
	return flappy.CommandNone
}

// MouseCommand translates a mouse event to a game command.
// Any left button press counts as a flap.
func MouseCommand(msg tea.MouseMsg) flappy.Command {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return flappy.CommandImpulse
	}
	return flappy.CommandNone
}
