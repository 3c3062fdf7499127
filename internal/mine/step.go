package mine

// Step advances the world by one tick, consuming exactly one action.
// The previous snapshot is never mutated; the returned snapshot is a fresh
// value sharing only the immutable level descriptor.
//
// Rule passes run in a fixed order: meta-actions, action resolution, beard
// growth, rock physics, water and air accounting, win check. Each pass
// reads the grid as it stood at the start of that pass and buffers its
// writes, so no object is processed twice in one tick.
//
// Stepping a snapshot whose verdict is already terminal is a programming
// error and panics.
func Step(prev *Snapshot, a Action) (*Snapshot, Verdict) {
	if prev.Verdict.Terminal() {
		panic("mine: Step called on terminal snapshot")
	}

	s := prev.Clone()
	s.History = append(s.History, a)
	s.Moves++

	// Meta-actions short-circuit: no physics this tick.
	switch a {
	case ActionAbort:
		s.Verdict = Aborted
		return s, s.Verdict
	case ActionRestart:
		s.Verdict = Restarted
		return s, s.Verdict
	case ActionSkip:
		s.Verdict = Skipped
		return s, s.Verdict
	}

	// n is the 1-based number of the tick being executed; growth and
	// flooding trigger on its multiples.
	n := s.Tick + 1

	won := resolveAction(s, a)

	if s.Level.Growth > 0 && n%s.Level.Growth == 0 {
		growBeards(s)
	}

	crushed := updateRocks(s)

	if s.Level.Flooding > 0 && n%s.Level.Flooding == 0 {
		s.WaterRow++
	}
	drowned := false
	if s.Submerged() {
		s.Air--
		if s.Air < 0 {
			drowned = true
		}
	} else {
		s.Air = s.Level.Waterproof
	}

	// A fatal rock collision overrides everything else this tick.
	switch {
	case crushed:
		s.Verdict = LossCrushed
	case drowned:
		s.Verdict = LossDrowned
	case won:
		s.Verdict = Win
	}

	s.Tick = n
	return s, s.Verdict
}

// growBeards runs one synchronous growth pass: every beard spreads into
// its 4-adjacent empty or earth cells. Reads come from the pre-growth
// grid, so beards created this pass do not spread within it.
func growBeards(s *Snapshot) {
	pre := s.Grid.Clone()
	for y := 1; y <= pre.H; y++ {
		for x := 1; x <= pre.W; x++ {
			p := P(x, y)
			if pre.At(p).Kind != KindBeard {
				continue
			}
			for _, d := range neighbors4 {
				q := p.Add(d[0], d[1])
				switch pre.At(q).Kind {
				case KindEmpty, KindEarth:
					s.Grid.Set(q, Cell{Kind: KindBeard})
				}
			}
		}
	}
}

// updateRocks applies gravity and sliding to every rock, scanning in
// traversal order (bottom row first, left to right). Rule reads come from
// the grid as it stood at the start of the pass; each rock is evaluated
// exactly once, at its pre-pass position. Destination cells are also
// checked against the working grid so two sliding rocks cannot land in the
// same cell: the first in scan order wins.
//
// Returns true if a rock landed on the robot.
func updateRocks(s *Snapshot) (crushed bool) {
	pre := s.Grid.Clone()

	for y := 1; y <= pre.H; y++ {
		for x := 1; x <= pre.W; x++ {
			p := P(x, y)
			c := pre.At(p)
			if !c.IsRock() {
				continue
			}

			dest, falls, fatal := rockDestination(pre, s.Grid, p, c)
			if !falls {
				continue
			}

			s.Grid.Set(p, Empty())
			s.Grid.Set(dest, Cell{Kind: c.Kind})
			if fatal {
				crushed = true
			}
		}
	}

	return crushed
}

// rockDestination decides where the rock at p moves this tick, if
// anywhere. pre is the grid at pass start (rule semantics); work is the
// working grid (occupancy of cells other rocks already claimed).
func rockDestination(pre, work *Grid, p Pos, c Cell) (dest Pos, falls, fatal bool) {
	below := p.Add(0, -1)

	// Straight fall: into empty, onto the robot (fatal), or, for a
	// higher-order rock, onto a lambda, which is destroyed.
	if ok, robot := fallable(pre, work, below, c); ok {
		return below, true, robot
	}

	// Blocked by a rock or a wall: try a diagonal slide, right first.
	if pre.At(below).BlocksRock() {
		for _, dx := range [2]int{1, -1} {
			side := p.Add(dx, 0)
			diag := p.Add(dx, -1)
			if pre.At(side).Kind != KindEmpty || work.At(side).Kind != KindEmpty {
				continue
			}
			if ok, robot := slidable(pre, work, diag); ok {
				return diag, true, robot
			}
		}
	}

	return Pos{}, false, false
}

// fallable reports whether a straight fall may enter dest, and whether
// doing so crushes the robot.
func fallable(pre, work *Grid, dest Pos, rock Cell) (ok, robot bool) {
	switch pre.At(dest).Kind {
	case KindEmpty:
		ok = work.At(dest).Kind == KindEmpty
	case KindRobot:
		ok, robot = true, true
	case KindLambda:
		if rock.Kind == KindHoRock {
			// The lambda is destroyed the moment the rock arrives.
			ok = true
		}
	}
	return ok, robot
}

// slidable reports whether a diagonal slide may enter dest, and whether
// doing so crushes the robot.
func slidable(pre, work *Grid, dest Pos) (ok, robot bool) {
	switch pre.At(dest).Kind {
	case KindEmpty:
		ok = work.At(dest).Kind == KindEmpty
	case KindRobot:
		ok, robot = true, true
	}
	return ok, robot
}
