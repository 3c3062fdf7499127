package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lambda-mine/internal/mine"
)

// KeyMapper translates Bubble Tea key messages to engine actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an engine action.
// ok is false for keys with no binding; isQuit is true for quit requests,
// which are handled by the platform rather than the engine.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action mine.Action, ok, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return 0, false, true
	case "up", "k":
		return mine.ActionUp, true, false
	case "down", "j":
		return mine.ActionDown, true, false
	case "left", "h":
		return mine.ActionLeft, true, false
	case "right", "l":
		return mine.ActionRight, true, false
	case " ", ".":
		return mine.ActionWait, true, false
	case "s":
		return mine.ActionShave, true, false
	case "a", "esc":
		return mine.ActionAbort, true, false
	case "r":
		return mine.ActionRestart, true, false
	case "n":
		return mine.ActionSkip, true, false
	}
	return 0, false, false
}
