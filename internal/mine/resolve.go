package mine

// resolveAction applies the player's action to the working snapshot.
// It reports whether the robot entered an open lift with the lambda quota
// met, which the step loop turns into a Win after the physics passes.
//
// A rejected move still consumed the player's turn: the caller has already
// recorded the action in the history and the move counter.
func resolveAction(s *Snapshot, a Action) (won bool) {
	// The lift opens the tick the quota is first reached, checked before
	// the destination-cell test so the robot can enter it that same tick.
	s.maybeOpenLift()

	switch a {
	case ActionWait:
		return false

	case ActionShave:
		s.shave()
		return false

	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return s.move(dirOf(a))

	default:
		// Meta-actions are short-circuited by Step before resolution.
		return false
	}
}

// dirOf converts a directional action to its direction.
func dirOf(a Action) Dir {
	switch a {
	case ActionUp:
		return DirUp
	case ActionDown:
		return DirDown
	case ActionLeft:
		return DirLeft
	default:
		return DirRight
	}
}

// move attempts to move the robot one cell in the given direction.
func (s *Snapshot) move(d Dir) (won bool) {
	dx, dy := d.Delta()
	dest := s.Robot.Add(dx, dy)

	switch c := s.Grid.At(dest); c.Kind {
	case KindEmpty, KindEarth:
		// Earth at the destination is excavated as the robot enters.
		s.relocateRobot(dest)

	case KindLambda:
		s.relocateRobot(dest)
		s.Lambdas++
		s.maybeOpenLift()

	case KindRazor:
		s.relocateRobot(dest)
		s.Razors++

	case KindRock:
		// Simple rocks push horizontally into an empty cell beyond.
		if dy == 0 {
			beyond := dest.Add(dx, 0)
			if s.Grid.At(beyond).Kind == KindEmpty {
				s.Grid.Set(beyond, Cell{Kind: KindRock})
				s.relocateRobot(dest)
			}
		}

	case KindLiftOpen:
		// The lift is a walkable cell; entering it wins only if the
		// quota is met at the moment of entry.
		s.relocateRobot(dest)
		won = s.Lambdas >= s.Level.Lambdas

	case KindTrampoline:
		s.teleport(c.ID)

	default:
		// Wall, closed lift, beard, higher-order rock, target: rejected.
	}

	return won
}

// relocateRobot moves the robot to dest, vacating its current cell.
// Stepping off the lift restores it: the robot may stand on an open lift
// without winning when the quota is not yet met.
func (s *Snapshot) relocateRobot(dest Pos) {
	s.vacateRobot()
	s.Grid.Set(dest, Cell{Kind: KindRobot})
	s.Robot = dest
}

// vacateRobot clears the robot's current cell.
func (s *Snapshot) vacateRobot() {
	if s.Robot == s.Lift {
		s.Grid.Set(s.Robot, Cell{Kind: KindLiftOpen})
	} else {
		s.Grid.Set(s.Robot, Empty())
	}
}

// teleport sends the robot through a trampoline to the mapped target.
// The whole trampoline group sharing that target, and the target cell
// itself, are consumed; the entered trampoline is one of the group cells.
func (s *Snapshot) teleport(trampID byte) {
	targetID, ok := s.Level.Trampolines[trampID]
	if !ok {
		// An unmapped trampoline blocks like a wall.
		return
	}
	dest, ok := s.targets[targetID]
	if !ok {
		return
	}

	s.vacateRobot()
	s.removeTrampolineGroup(targetID)
	s.Grid.Set(dest, Cell{Kind: KindRobot})
	s.Robot = dest
}

// shave consumes one razor and clears every beard 4-adjacent to the robot.
// With no razors held the action is a no-op (but still counted as a move).
func (s *Snapshot) shave() {
	if s.Razors <= 0 {
		return
	}
	s.Razors--
	for _, d := range neighbors4 {
		p := s.Robot.Add(d[0], d[1])
		if s.Grid.At(p).Kind == KindBeard {
			s.Grid.Set(p, Empty())
		}
	}
}

// maybeOpenLift flips the lift to open once the lambda quota is reached.
func (s *Snapshot) maybeOpenLift() {
	if s.Lambdas >= s.Level.Lambdas && s.Grid.At(s.Lift).Kind == KindLiftClosed {
		s.Grid.Set(s.Lift, Cell{Kind: KindLiftOpen})
	}
}
