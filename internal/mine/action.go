package mine

import "fmt"

// Action is the one input symbol the engine consumes per tick.
type Action uint8

const (
	ActionWait Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionShave // Use a razor on adjacent beards
	ActionAbort
	ActionRestart
	ActionSkip
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionWait:
		return "Wait"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionShave:
		return "Shave"
	case ActionAbort:
		return "Abort"
	case ActionRestart:
		return "Restart"
	case ActionSkip:
		return "Skip"
	default:
		return "Unknown"
	}
}

// Rune returns the single-letter route encoding of the action, used for
// recorded routes and the results store.
func (a Action) Rune() byte {
	switch a {
	case ActionWait:
		return 'W'
	case ActionUp:
		return 'U'
	case ActionDown:
		return 'D'
	case ActionLeft:
		return 'L'
	case ActionRight:
		return 'R'
	case ActionShave:
		return 'S'
	case ActionAbort:
		return 'A'
	case ActionRestart:
		return '!'
	case ActionSkip:
		return '>'
	default:
		return '?'
	}
}

// ParseRoute decodes a route string of single-letter actions
// (L, R, U, D, W, S, A). Whitespace is ignored.
func ParseRoute(route string) ([]Action, error) {
	actions := make([]Action, 0, len(route))
	for i, r := range route {
		switch r {
		case 'L':
			actions = append(actions, ActionLeft)
		case 'R':
			actions = append(actions, ActionRight)
		case 'U':
			actions = append(actions, ActionUp)
		case 'D':
			actions = append(actions, ActionDown)
		case 'W':
			actions = append(actions, ActionWait)
		case 'S':
			actions = append(actions, ActionShave)
		case 'A':
			actions = append(actions, ActionAbort)
		case ' ', '\t', '\n', '\r':
			// Allow formatted routes
		default:
			return nil, fmt.Errorf("mine: invalid route character %q at offset %d", r, i)
		}
	}
	return actions, nil
}

// RouteString encodes a sequence of actions as a route string.
func RouteString(actions []Action) string {
	b := make([]byte, len(actions))
	for i, a := range actions {
		b[i] = a.Rune()
	}
	return string(b)
}
