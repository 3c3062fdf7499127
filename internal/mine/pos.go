package mine

import "sort"

// Pos is a grid coordinate. X is the column (1 = leftmost), Y is the row
// (1 = bottom). Rows increase upward: the loader reverses authored line
// order so the last text line of a map becomes row 1.
type Pos struct {
	X, Y int
}

// P is a shorthand constructor.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add returns the position offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Dir is a movement direction for the robot.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (dx, dy) unit vector for the direction.
// Up increases Y because row 1 is the bottom of the map.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// neighbors4 lists the 4-adjacent offsets, used by beard growth and razor
// shaving.
var neighbors4 = [4][2]int{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}

// Scan sorts positions into the fixed traversal order used for
// conflict-sensitive rule application: ascending row, then ascending column
// within a row. Bottom row first, left to right. The input slice is not
// modified.
func Scan(ps []Pos) []Pos {
	out := make([]Pos, len(ps))
	copy(out, ps)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
