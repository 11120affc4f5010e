package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zxrescue/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	TurnLeft   key.Binding
	TurnRight  key.Binding
	SpeedUp    key.Binding
	SpeedDown  key.Binding
	Climb      key.Binding
	Descend    key.Binding
	Land       key.Binding
	ToggleView key.Binding
	ToggleMap  key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TurnLeft, k.SpeedUp, k.Climb, k.Descend, k.Land, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TurnLeft, k.TurnRight, k.SpeedUp, k.SpeedDown},
		{k.Climb, k.Descend, k.Land},
		{k.ToggleView, k.ToggleMap, k.Pause, k.Screenshot},
		{k.Restart, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		TurnLeft:   key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/d", "turn")),
		TurnRight:  key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d", "turn right")),
		SpeedUp:    key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/s", "speed")),
		SpeedDown:  key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s", "slow/reverse")),
		Climb:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "climb")),
		Descend:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "descend")),
		Land:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "land")),
		ToggleView: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "flip view")),
		ToggleMap:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "map")),
		Pause:      key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Back:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "screenshot")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.TurnLeft):
		return core.ActionTurnLeft, false
	case key.Matches(msg, k.TurnRight):
		return core.ActionTurnRight, false
	case key.Matches(msg, k.SpeedUp):
		return core.ActionSpeedUp, false
	case key.Matches(msg, k.SpeedDown):
		return core.ActionSpeedDown, false
	case key.Matches(msg, k.Climb):
		return core.ActionClimb, false
	case key.Matches(msg, k.Descend):
		return core.ActionDescend, false
	case key.Matches(msg, k.Land):
		return core.ActionLand, false
	case key.Matches(msg, k.ToggleView):
		return core.ActionToggleView, false
	case key.Matches(msg, k.ToggleMap):
		return core.ActionToggleMap, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
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
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action. Letter keys are
// left to the seed field, so only arrows and control keys navigate.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c":
		return MenuActionQuit
	case "up", "shift+tab":
		return MenuActionUp
	case "down", "tab":
		return MenuActionDown
	case "left":
		return MenuActionLeft
	case "right":
		return MenuActionRight
	case "enter":
		return MenuActionSelect
	case "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
