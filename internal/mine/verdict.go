package mine

// Verdict is the progress state of a game. Running is the only
// non-terminal verdict; once a snapshot carries a terminal verdict the
// driver must not step it again.
type Verdict uint8

const (
	Running Verdict = iota
	Win
	LossCrushed // A rock landed on the robot
	LossDrowned // The robot ran out of air underwater
	Aborted
	Restarted
	Skipped
)

// Terminal reports whether the verdict ends the game.
func (v Verdict) Terminal() bool {
	return v != Running
}

// Loss reports whether the verdict is a losing one.
func (v Verdict) Loss() bool {
	return v == LossCrushed || v == LossDrowned
}

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case Running:
		return "running"
	case Win:
		return "win"
	case LossCrushed:
		return "crushed"
	case LossDrowned:
		return "drowned"
	case Aborted:
		return "aborted"
	case Restarted:
		return "restarted"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}
