package game

// Phase labels the session's lifecycle for snapshots and tests.
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhasePaused  Phase = "paused"
	PhaseWin     Phase = "win"
	PhaseLost    Phase = "lost"
)

// Snapshot captures the complete session state for determinism testing
// and replay. Board contents are folded into a compact string so two
// snapshots compare with ==.
type Snapshot struct {
	Score       int
	Viruses     int
	PillsPlaced int
	Board       string
	PillRow     int
	PillCol     int
	PillOrient  Orientation
	PillActive  bool
	NextFirst   Color
	NextSecond  Color
	Phase       Phase
}

// Snapshot returns the current session snapshot for determinism
// verification.
func (s *Session) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case s.over && s.won:
		phase = PhaseWin
	case s.over:
		phase = PhaseLost
	case !s.running:
		phase = PhasePaused
	}

	snap := Snapshot{
		Score:       s.score,
		Viruses:     s.virusCount,
		PillsPlaced: s.placed,
		Board:       s.board.String(),
		NextFirst:   s.nextColors[0],
		NextSecond:  s.nextColors[1],
		Phase:       phase,
	}
	if s.pill != nil {
		snap.PillActive = true
		snap.PillRow = s.pill.Row
		snap.PillCol = s.pill.Col
		snap.PillOrient = s.pill.Orientation
	}
	return snap
}
