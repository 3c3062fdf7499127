package mine_test

import (
	"testing"

	"github.com/vovakirdan/lambda-mine/internal/mine"
)

func TestMoveExcavatesEarth(t *testing.T) {
	l := mustLevel(t, `#####
#R.\#
#L..#
#####
`)
	s := mine.Initialize(l)

	s = step(t, s, mine.ActionRight)

	if s.Robot != mine.P(3, 3) {
		t.Fatalf("Robot = %v, want (3,3)", s.Robot)
	}
	if got := s.Grid.At(mine.P(2, 3)).Kind; got != mine.KindEmpty {
		t.Errorf("Vacated cell = %v, want empty", got)
	}
}

func TestMoveIntoWallIsRejectedButCounted(t *testing.T) {
	l := mustLevel(t, `#####
#R.\#
#L..#
#####
`)
	s := mine.Initialize(l)

	s = step(t, s, mine.ActionUp)

	if s.Robot != mine.P(2, 3) {
		t.Errorf("Robot = %v, want (2,3)", s.Robot)
	}
	if s.Moves != 1 {
		t.Errorf("Moves = %d, want 1", s.Moves)
	}
	if len(s.History) != 1 || s.History[0] != mine.ActionUp {
		t.Errorf("History = %v, want [Up]", s.History)
	}
}

func TestCollectingLastLambdaOpensLift(t *testing.T) {
	l := mustLevel(t, `#####
#R\L#
#####
`)
	s := mine.Initialize(l)

	if got := s.Grid.At(s.Lift).Kind; got != mine.KindLiftClosed {
		t.Fatalf("Initial lift = %v, want closed", got)
	}

	s = step(t, s, mine.ActionRight)

	if s.Lambdas != 1 {
		t.Fatalf("Lambdas = %d, want 1", s.Lambdas)
	}
	// The lift opens within the same resolution.
	if got := s.Grid.At(s.Lift).Kind; got != mine.KindLiftOpen {
		t.Errorf("Lift after quota = %v, want open", got)
	}
}

func TestEnteringOpenLiftWithQuotaWins(t *testing.T) {
	l := mustLevel(t, `#####
#R\L#
#####
`)
	s := mine.Initialize(l)
	s = step(t, s, mine.ActionRight)

	next, verdict := mine.Step(s, mine.ActionRight)
	if verdict != mine.Win {
		t.Fatalf("Verdict = %v, want win", verdict)
	}
	if next.Robot != next.Lift {
		t.Errorf("Robot = %v, want lift position %v", next.Robot, next.Lift)
	}
}

func TestClosedLiftBlocksLikeWall(t *testing.T) {
	l := mustLevel(t, `#####
#RL\#
#####
`)
	s := mine.Initialize(l)

	s = step(t, s, mine.ActionRight)

	if s.Robot != mine.P(2, 2) {
		t.Errorf("Robot entered a closed lift; Robot = %v", s.Robot)
	}
	if s.Verdict != mine.Running {
		t.Errorf("Verdict = %v, want running", s.Verdict)
	}
}

func TestRobotLeavesOpenLiftBehind(t *testing.T) {
	l := mustLevel(t, `#####
#.\ #
#RO #
#####
`)
	s := mine.Initialize(l)

	// Quota is 1, nothing collected: entering the open lift does not win.
	s = step(t, s, mine.ActionRight)
	if s.Verdict != mine.Running {
		t.Fatalf("Verdict = %v, want running", s.Verdict)
	}
	if s.Robot != s.Lift {
		t.Fatalf("Robot = %v, want lift position %v", s.Robot, s.Lift)
	}

	s = step(t, s, mine.ActionRight)
	if got := s.Grid.At(s.Lift).Kind; got != mine.KindLiftOpen {
		t.Errorf("Lift after walk-off = %v, want open", got)
	}
}

func TestPushRockRight(t *testing.T) {
	l := mustLevel(t, `#######
#R* #L#
#.....#
#######
`)
	s := mine.Initialize(l)

	s = step(t, s, mine.ActionRight)

	if s.Robot != mine.P(3, 3) {
		t.Fatalf("Robot = %v, want (3,3)", s.Robot)
	}
	if got := s.Grid.At(mine.P(4, 3)).Kind; got != mine.KindRock {
		t.Fatalf("Pushed cell = %v, want rock", got)
	}

	// The rock is now against a wall: a second push is rejected.
	s = step(t, s, mine.ActionRight)
	if s.Robot != mine.P(3, 3) {
		t.Errorf("Robot = %v after rejected push, want (3,3)", s.Robot)
	}
	if got := s.Grid.At(mine.P(4, 3)).Kind; got != mine.KindRock {
		t.Errorf("Rock moved on rejected push; cell = %v", got)
	}
}

func TestRocksCannotBePushedVertically(t *testing.T) {
	l := mustLevel(t, `#####
#.R\#
#.*L#
#...#
#####
`)
	s := mine.Initialize(l)

	s = step(t, s, mine.ActionDown)

	if s.Robot != mine.P(3, 4) {
		t.Errorf("Robot = %v, want (3,4)", s.Robot)
	}
	if got := s.Grid.At(mine.P(3, 3)).Kind; got != mine.KindRock {
		t.Errorf("Rock cell = %v, want rock", got)
	}
}

func TestHigherOrderRocksCannotBePushed(t *testing.T) {
	l := mustLevel(t, `######
#R@ \#
#...L#
######
`)
	s := mine.Initialize(l)

	s = step(t, s, mine.ActionRight)

	if s.Robot != mine.P(2, 3) {
		t.Errorf("Robot = %v, want (2,3)", s.Robot)
	}
	if got := s.Grid.At(mine.P(3, 3)).Kind; got != mine.KindHoRock {
		t.Errorf("Rock cell = %v, want horock", got)
	}
}

func TestTeleportConsumesWholeGroup(t *testing.T) {
	l := mustLevel(t, `##########
#R A  B 1#
#L......\#
##########

Trampoline A targets 1
Trampoline B targets 1
`)
	s := mine.Initialize(l)

	s = step(t, s, mine.ActionRight)
	s = step(t, s, mine.ActionRight)

	if s.Robot != mine.P(9, 3) {
		t.Fatalf("Robot = %v, want target position (9,3)", s.Robot)
	}
	// Entering A consumes both trampolines of the group and the target.
	if got := s.Grid.At(mine.P(4, 3)).Kind; got != mine.KindEmpty {
		t.Errorf("Trampoline A cell = %v, want empty", got)
	}
	if got := s.Grid.At(mine.P(7, 3)).Kind; got != mine.KindEmpty {
		t.Errorf("Trampoline B cell = %v, want empty", got)
	}
	if got := s.Grid.At(mine.P(3, 3)).Kind; got != mine.KindEmpty {
		t.Errorf("Origin cell = %v, want empty", got)
	}
}

func TestShaveClearsAdjacentBeards(t *testing.T) {
	l := mustLevel(t, `#####
# W #
#WRW#
# W #
#\.L#
#####

Razors 1
`)
	s := mine.Initialize(l)

	s = step(t, s, mine.ActionShave)

	if s.Razors != 0 {
		t.Errorf("Razors = %d, want 0", s.Razors)
	}
	if got := s.Grid.Count(mine.KindBeard); got != 0 {
		t.Errorf("Beard count after shave = %d, want 0", got)
	}
}

func TestShaveWithoutRazorIsNoOp(t *testing.T) {
	l := mustLevel(t, `#####
#RW #
#\.L#
#####
`)
	s := mine.Initialize(l)

	s = step(t, s, mine.ActionShave)

	if got := s.Grid.Count(mine.KindBeard); got != 1 {
		t.Errorf("Beard count = %d, want 1", got)
	}
	if s.Moves != 1 {
		t.Errorf("Moves = %d, want 1", s.Moves)
	}
}

func TestCrushOverridesWinOnSameTick(t *testing.T) {
	l := mustLevel(t, `#####
#\ *#
#R O#
#####
`)
	s := mine.Initialize(l)

	s = step(t, s, mine.ActionUp)    // collect the lambda
	s = step(t, s, mine.ActionDown)  // back down
	s = step(t, s, mine.ActionRight) // next to the lift

	// Entering the lift meets the quota, but the rock resting on the lift
	// cell's column falls onto the robot the same tick.
	_, verdict := mine.Step(s, mine.ActionRight)
	if verdict != mine.LossCrushed {
		t.Errorf("Verdict = %v, want crushed", verdict)
	}
}

func TestPickingUpRazor(t *testing.T) {
	l := mustLevel(t, `#####
#R!\#
#L..#
#####
`)
	s := mine.Initialize(l)

	s = step(t, s, mine.ActionRight)

	if s.Razors != 1 {
		t.Errorf("Razors = %d, want 1", s.Razors)
	}
	if s.Robot != mine.P(3, 3) {
		t.Errorf("Robot = %v, want (3,3)", s.Robot)
	}
}
