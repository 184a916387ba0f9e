package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coin-frenzy/internal/core"
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Forward    key.Binding
	Backward   key.Binding
	StrafeL    key.Binding
	StrafeR    key.Binding
	TurnLeft   key.Binding
	TurnRight  key.Binding
	Fire       key.Binding
	Magnet     key.Binding
	Cheat      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.TurnLeft, k.Fire, k.Magnet, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward, k.StrafeL, k.StrafeR},
		{k.TurnLeft, k.TurnRight, k.Fire},
		{k.Magnet, k.Cheat, k.Pause, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Forward: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/s/a/d", "move"),
		),
		Backward: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s", "back"),
		),
		StrafeL: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a", "strafe left"),
		),
		StrafeR: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d", "strafe right"),
		),
		TurnLeft: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q/e", "turn"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "turn right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "f"),
			key.WithHelp("space", "fire"),
		),
		Magnet: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "magnet"),
		),
		Cheat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cheat"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// moveDir is one of the four held movement directions.
type moveDir int

const (
	moveNone moveDir = iota
	moveForward
	moveBackward
	moveLeft
	moveRight
)

// KeyMapper translates Bubble Tea key messages to arena input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings the mapper matches against.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapMove returns the movement direction a key holds, or moveNone.
func (km *KeyMapper) MapMove(msg tea.KeyMsg) moveDir {
	switch {
	case key.Matches(msg, km.keys.Forward):
		return moveForward
	case key.Matches(msg, km.keys.Backward):
		return moveBackward
	case key.Matches(msg, km.keys.StrafeL):
		return moveLeft
	case key.Matches(msg, km.keys.StrafeR):
		return moveRight
	}
	return moveNone
}

// MapAction translates a key message to a discrete arena action.
func (km *KeyMapper) MapAction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Fire):
		return core.ActionFire
	case key.Matches(msg, km.keys.TurnLeft):
		return core.ActionTurnLeft
	case key.Matches(msg, km.keys.TurnRight):
		return core.ActionTurnRight
	case key.Matches(msg, km.keys.Magnet):
		return core.ActionMagnet
	case key.Matches(msg, km.keys.Cheat):
		return core.ActionCheat
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
