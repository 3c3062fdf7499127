package mine

// Grid stores the mine as a rectangular block of cells in row-major order:
// index = (y-1)*W + (x-1). Positions outside the bounds read as walls so
// physics never has to special-case the map edge.
type Grid struct {
	W     int
	H     int
	Cells []Cell
}

// NewGrid creates a grid of the given dimensions with all cells empty.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}
}

// index converts a position to a flat array index.
func (g *Grid) index(p Pos) int {
	return (p.Y-1)*g.W + (p.X - 1)
}

// InBounds reports whether the position lies within the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 1 && p.X <= g.W && p.Y >= 1 && p.Y <= g.H
}

// At returns the cell at the given position. Out-of-bounds positions read
// as walls.
func (g *Grid) At(p Pos) Cell {
	if !g.InBounds(p) {
		return Cell{Kind: KindWall}
	}
	return g.Cells[g.index(p)]
}

// Set places a cell at the given position. Out-of-bounds writes are
// silently ignored.
func (g *Grid) Set(p Pos, c Cell) {
	if g.InBounds(p) {
		g.Cells[g.index(p)] = c
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Equal reports whether two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// Find returns the position of the first cell with the given kind in scan
// order, or false if none exists.
func (g *Grid) Find(k Kind) (Pos, bool) {
	for y := 1; y <= g.H; y++ {
		for x := 1; x <= g.W; x++ {
			p := P(x, y)
			if g.At(p).Kind == k {
				return p, true
			}
		}
	}
	return Pos{}, false
}

// Count returns the number of cells with the given kind.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.Cells {
		if c.Kind == k {
			n++
		}
	}
	return n
}
