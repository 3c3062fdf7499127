package mine

// Snapshot is one frame of the simulated world. The engine never mutates a
// snapshot it was given: Step clones the previous snapshot, applies all
// rules to the clone, and returns it. Two snapshots never share a grid.
type Snapshot struct {
	Level *Level // Immutable descriptor, shared by all snapshots of a game
	Grid  *Grid

	Robot Pos
	Lift  Pos

	Tick     int // Completed ticks
	Air      int // Submerged ticks remaining before drowning
	WaterRow int // Rows at or below this are underwater

	Lambdas int // Lambdas collected so far
	Razors  int // Razors held
	Moves   int // Actions consumed, including rejected ones

	Verdict Verdict

	// History is the ordered sequence of past actions, kept for display
	// and replay. The engine itself never consults it.
	History []Action

	targets map[byte]Pos   // Target id -> target position
	sources map[byte][]Pos // Target id -> positions of trampolines mapping to it
}

// Initialize creates the starting snapshot for a level. The robot and lift
// are located by scanning the initial grid; trampoline indices are built
// from the level's trampoline mapping.
func Initialize(l *Level) *Snapshot {
	g := l.Grid()

	robot, ok := g.Find(KindRobot)
	if !ok {
		panic("mine: level has no robot")
	}
	lift, ok := g.Find(KindLiftClosed)
	if !ok {
		lift, ok = g.Find(KindLiftOpen)
		if !ok {
			panic("mine: level has no lift")
		}
	}

	s := &Snapshot{
		Level:    l,
		Grid:     g,
		Robot:    robot,
		Lift:     lift,
		Air:      l.Waterproof,
		WaterRow: l.Water,
		Razors:   l.Razors,
		targets:  make(map[byte]Pos),
		sources:  make(map[byte][]Pos),
	}

	for y := 1; y <= g.H; y++ {
		for x := 1; x <= g.W; x++ {
			p := P(x, y)
			switch c := g.At(p); c.Kind {
			case KindTarget:
				s.targets[c.ID] = p
			case KindTrampoline:
				if tid, ok := l.Trampolines[c.ID]; ok {
					s.sources[tid] = append(s.sources[tid], p)
				}
			}
		}
	}

	return s
}

// Clone returns a deep copy of the snapshot. The level descriptor is
// shared; everything mutable is copied.
func (s *Snapshot) Clone() *Snapshot {
	next := *s
	next.Grid = s.Grid.Clone()
	next.History = make([]Action, len(s.History), len(s.History)+1)
	copy(next.History, s.History)
	next.targets = make(map[byte]Pos, len(s.targets))
	for id, p := range s.targets {
		next.targets[id] = p
	}
	next.sources = make(map[byte][]Pos, len(s.sources))
	for id, ps := range s.sources {
		cp := make([]Pos, len(ps))
		copy(cp, ps)
		next.sources[id] = cp
	}
	return &next
}

// Submerged reports whether the robot is at or below the water row.
func (s *Snapshot) Submerged() bool {
	return s.Robot.Y <= s.WaterRow
}

// Route returns the action history as a route string.
func (s *Snapshot) Route() string {
	return RouteString(s.History)
}

// Rows renders the grid as text lines in display order (top row first).
// Intended for renderers and the route runner; carries no styling.
func (s *Snapshot) Rows() []string {
	rows := make([]string, 0, s.Grid.H)
	for y := s.Grid.H; y >= 1; y-- {
		line := make([]rune, s.Grid.W)
		for x := 1; x <= s.Grid.W; x++ {
			line[x-1] = s.Grid.At(P(x, y)).Rune()
		}
		rows = append(rows, string(line))
	}
	return rows
}

// removeTrampolineGroup erases every trampoline that maps to the given
// target, and the target cell itself. Teleporting consumes the whole group.
func (s *Snapshot) removeTrampolineGroup(targetID byte) {
	for _, p := range s.sources[targetID] {
		s.Grid.Set(p, Empty())
	}
	delete(s.sources, targetID)
	delete(s.targets, targetID)
}
