package mine

// Default metadata values, applied by the loader when a level file omits
// the corresponding line.
const (
	DefaultGrowth     = 25
	DefaultWaterproof = 10
)

// Level is the static description of a mine, produced once by the loader
// and never mutated. A Snapshot is created from it at game start and
// replaced tick by tick; the Level itself is shared by every snapshot of
// the same game.
type Level struct {
	ID   string
	Name string

	Width  int
	Height int
	Cells  []Cell // Row-major, same layout as Grid

	// Trampolines maps trampoline identifiers ('A'-'I') to target
	// identifiers ('1'-'9'). Several trampolines may share one target.
	Trampolines map[byte]byte

	Growth     int // Beard growth interval in ticks
	Razors     int // Razors held at game start
	Water      int // Initial water row (0 = dry)
	Flooding   int // Ticks between water rises (0 = never)
	Waterproof int // Consecutive submerged ticks survivable

	Lambdas int // Total lambdas that must be collected to open the lift
}

// Grid builds a fresh mutable grid from the level's initial cells.
func (l *Level) Grid() *Grid {
	cells := make([]Cell, len(l.Cells))
	copy(cells, l.Cells)
	return &Grid{W: l.Width, H: l.Height, Cells: cells}
}
