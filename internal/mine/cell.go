// Package mine provides the core simulation logic for the lambda mine game.
// This package is UI-agnostic and deterministic.
package mine

// Kind identifies the variant of a cell's contents. The set is closed:
// every switch over Kind should handle all cases.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindWall
	KindEarth
	KindRobot
	KindRock       // Simple rock
	KindHoRock     // Higher-order rock
	KindLambda
	KindLiftClosed
	KindLiftOpen
	KindTrampoline // Payload: trampoline identifier 'A'-'I'
	KindTarget     // Payload: target identifier '1'-'9'
	KindBeard
	KindRazor
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindWall:
		return "wall"
	case KindEarth:
		return "earth"
	case KindRobot:
		return "robot"
	case KindRock:
		return "rock"
	case KindHoRock:
		return "horock"
	case KindLambda:
		return "lambda"
	case KindLiftClosed:
		return "lift-closed"
	case KindLiftOpen:
		return "lift-open"
	case KindTrampoline:
		return "trampoline"
	case KindTarget:
		return "target"
	case KindBeard:
		return "beard"
	case KindRazor:
		return "razor"
	default:
		return "unknown"
	}
}

// Cell is one grid square. ID carries the identifier for trampolines
// ('A'-'I') and targets ('1'-'9'); it is zero for every other kind.
type Cell struct {
	Kind Kind
	ID   byte
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{Kind: KindEmpty}
}

// IsRock reports whether the cell holds a rock of either kind.
func (c Cell) IsRock() bool {
	return c.Kind == KindRock || c.Kind == KindHoRock
}

// BlocksRock reports whether a rock resting on this cell is eligible to
// slide. Rocks slide off other rocks and walls; anything else holds them
// in place.
func (c Cell) BlocksRock() bool {
	return c.IsRock() || c.Kind == KindWall
}

// Rune returns the map character for the cell, matching the level file
// format.
func (c Cell) Rune() rune {
	switch c.Kind {
	case KindEmpty:
		return ' '
	case KindWall:
		return '#'
	case KindEarth:
		return '.'
	case KindRobot:
		return 'R'
	case KindRock:
		return '*'
	case KindHoRock:
		return '@'
	case KindLambda:
		return '\\'
	case KindLiftClosed:
		return 'L'
	case KindLiftOpen:
		return 'O'
	case KindTrampoline:
		return rune(c.ID)
	case KindTarget:
		return rune(c.ID)
	case KindBeard:
		return 'W'
	case KindRazor:
		return '!'
	default:
		return '?'
	}
}

// ParseRune maps a level file character to a cell. The second return value
// is false for characters outside the map alphabet.
func ParseRune(r rune) (Cell, bool) {
	switch {
	case r == ' ':
		return Cell{Kind: KindEmpty}, true
	case r == '#':
		return Cell{Kind: KindWall}, true
	case r == '.':
		return Cell{Kind: KindEarth}, true
	case r == 'R':
		return Cell{Kind: KindRobot}, true
	case r == '*':
		return Cell{Kind: KindRock}, true
	case r == '@':
		return Cell{Kind: KindHoRock}, true
	case r == '\\':
		return Cell{Kind: KindLambda}, true
	case r == 'L':
		return Cell{Kind: KindLiftClosed}, true
	case r == 'O':
		return Cell{Kind: KindLiftOpen}, true
	case r >= 'A' && r <= 'I':
		return Cell{Kind: KindTrampoline, ID: byte(r)}, true
	case r >= '0' && r <= '9':
		return Cell{Kind: KindTarget, ID: byte(r)}, true
	case r == 'W':
		return Cell{Kind: KindBeard}, true
	case r == '!':
		return Cell{Kind: KindRazor}, true
	default:
		return Cell{}, false
	}
}
