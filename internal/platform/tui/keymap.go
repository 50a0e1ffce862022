package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// GameKeyMap holds the in-game bindings.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultGameKeyMap binds arrows, WASD and hjkl to the four moves.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d/l", "right")),
		Confirm: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "continue")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Back, k.Quit}
}

// FullHelp returns all bindings grouped by purpose.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Pause, k.Restart},
		{k.Back, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	keys    GameKeyMap
	actions []boundAction // checked in order, quit first
}

type boundAction struct {
	binding *key.Binding
	action  core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultGameKeyMap())
}

// NewKeyMapperWith creates a key mapper for custom bindings.
func NewKeyMapperWith(keys GameKeyMap) *KeyMapper {
	km := &KeyMapper{keys: keys}
	km.actions = []boundAction{
		{&km.keys.Quit, core.ActionQuit},
		{&km.keys.Up, core.ActionUp},
		{&km.keys.Down, core.ActionDown},
		{&km.keys.Left, core.ActionLeft},
		{&km.keys.Right, core.ActionRight},
		{&km.keys.Confirm, core.ActionConfirm},
		{&km.keys.Back, core.ActionBack},
		{&km.keys.Pause, core.ActionPause},
		{&km.keys.Restart, core.ActionRestart},
	}
	return km
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.actions {
		if key.Matches(msg, *b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var scoreboardKey = key.NewBinding(key.WithKeys("tab"))

// MapKeyToMenuAction translates a key to a menu action. Menus reuse the game
// bindings: up/down move the cursor, confirm selects.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, scoreboardKey) {
		return MenuActionScoreboard
	}

	switch action, _ := km.MapKey(msg); action {
	case core.ActionQuit:
		return MenuActionQuit
	case core.ActionUp:
		return MenuActionUp
	case core.ActionDown:
		return MenuActionDown
	case core.ActionConfirm:
		return MenuActionSelect
	case core.ActionBack:
		return MenuActionBack
	}
	return MenuActionNone
}
