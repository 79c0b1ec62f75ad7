package game

import (
	"math/rand"
)

// DefaultVirusCount is the number of viruses seeded by Reset.
const DefaultVirusCount = 12

// DefaultPointsPerCell is the score awarded per removed cell.
const DefaultPointsPerCell = 100

// Rules carries the per-session tunables. Zero-valued fields fall back to
// the package defaults in NewSession.
type Rules struct {
	Width         int
	Height        int
	Viruses       int
	PointsPerCell int
}

// DefaultRules returns the classic 8x16 board with 12 viruses.
func DefaultRules() Rules {
	return Rules{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Viruses:       DefaultVirusCount,
		PointsPerCell: DefaultPointsPerCell,
	}
}

// Session owns one run of the game: the board, the active pill, the
// next-pill preview, score and virus bookkeeping, and the running/over
// flags. All operations are synchronous and single-writer; the platform
// drives Tick on its own schedule and serializes every call.
type Session struct {
	board      *Board
	rng        *rand.Rand
	pill       *Pill
	nextColors [2]Color
	rules      Rules

	score      int
	virusCount int
	placed     int
	running    bool
	over       bool
	won        bool
}

// NewSession creates a session with the given rules and RNG seed, and
// performs an initial Reset. The session starts paused; call Start to
// accept moves and ticks.
func NewSession(rules Rules, seed int64) *Session {
	def := DefaultRules()
	if rules.Width <= 0 {
		rules.Width = def.Width
	}
	if rules.Height <= 0 {
		rules.Height = def.Height
	}
	if rules.Viruses <= 0 {
		rules.Viruses = def.Viruses
	}
	if rules.PointsPerCell <= 0 {
		rules.PointsPerCell = def.PointsPerCell
	}
	s := &Session{
		board: NewBoard(rules.Width, rules.Height),
		rng:   rand.New(rand.NewSource(seed)),
		rules: rules,
	}
	s.Reset()
	return s
}

// Reset clears the board, seeds the virus field, zeroes the score, and
// spawns a fresh pill at the spawn position. The running flag is left
// untouched so a paused driver stays paused across restarts.
func (s *Session) Reset() {
	s.board.Clear()
	s.board.SeedViruses(s.rules.Viruses, s.rng)
	s.virusCount = s.rules.Viruses
	s.score = 0
	s.placed = 0
	s.over = false
	s.won = false
	s.rollNext()
	s.spawnPill()
}

// Start resumes the session. The external driver is expected to begin
// calling Tick on its drop schedule.
func (s *Session) Start() {
	if s.over {
		return
	}
	s.running = true
}

// Pause suspends the session: movement, rotation, and ticks become no-ops
// until Start is called again.
func (s *Session) Pause() {
	s.running = false
}

// IsRunning returns true while the session accepts moves and ticks.
func (s *Session) IsRunning() bool {
	return s.running
}

// IsOver returns true once the game has ended.
func (s *Session) IsOver() bool {
	return s.over
}

// Won returns true if the game ended by clearing every virus.
func (s *Session) Won() bool {
	return s.won
}

// Score returns the current score. It never decreases.
func (s *Session) Score() int {
	return s.score
}

// VirusCount returns the number of viruses remaining on the board.
func (s *Session) VirusCount() int {
	return s.virusCount
}

// PillsPlaced returns how many pills have locked since the last Reset.
func (s *Session) PillsPlaced() int {
	return s.placed
}

// Board exposes the settled playfield for rendering. The active pill is
// never written into it; callers overlay ActivePill at render time.
func (s *Session) Board() *Board {
	return s.board
}

// ActivePill returns the falling pill, if one is active.
func (s *Session) ActivePill() (Pill, bool) {
	if s.pill == nil {
		return Pill{}, false
	}
	return *s.pill, true
}

// NextColors returns the colors of the upcoming pill, for preview display.
func (s *Session) NextColors() (Color, Color) {
	return s.nextColors[0], s.nextColors[1]
}

// CanOccupy returns true if both pill cells at the given anchor position
// and orientation are inside the board and empty. Only board cells are
// consulted; the active pill itself never occupies the board.
func (s *Session) CanOccupy(row, col int, o Orientation) bool {
	dRow, dCol := o.Offsets()
	if !s.board.InBounds(row, col) || !s.board.InBounds(row+dRow, col+dCol) {
		return false
	}
	return s.board.At(row, col).IsEmpty() && s.board.At(row+dRow, col+dCol).IsEmpty()
}

// MoveLeft shifts the pill one column left. Rejected silently when the
// session is not running, the game is over, or the target cells are
// blocked or out of bounds.
func (s *Session) MoveLeft() {
	s.shift(-1)
}

// MoveRight shifts the pill one column right, with the same rejection
// rules as MoveLeft.
func (s *Session) MoveRight() {
	s.shift(1)
}

func (s *Session) shift(dCol int) {
	if !s.movable() {
		return
	}
	if s.CanOccupy(s.pill.Row, s.pill.Col+dCol, s.pill.Orientation) {
		s.pill.Col += dCol
	}
}

// Rotate advances the pill one step through the orientation cycle. The
// rotation is rejected, leaving the orientation unchanged, when the new
// footprint at the current position would leave the board or overlap a
// settled cell. No wall kick is attempted.
func (s *Session) Rotate() {
	if !s.movable() {
		return
	}
	next := s.pill.Orientation.Next()
	if s.CanOccupy(s.pill.Row, s.pill.Col, next) {
		s.pill.Orientation = next
	}
}

// FastDrop performs one tick-equivalent descent step: the pill moves down
// a single row, locking if it cannot.
func (s *Session) FastDrop() {
	if !s.movable() {
		return
	}
	s.descend()
}

// HardDrop drops the pill until it locks. Lock and resolution semantics
// are identical to repeated ticks.
func (s *Session) HardDrop() {
	if !s.movable() {
		return
	}
	for s.pill != nil && !s.over {
		s.descend()
	}
}

// Tick advances the pill one row, locking it when the row below is
// blocked. A no-op without an active pill, after game over, or while
// paused. Locking writes both pill cells to the board, runs resolution to
// a fixed point, spawns the next pill, and evaluates game over.
func (s *Session) Tick() {
	if !s.movable() {
		return
	}
	s.descend()
}

// movable reports whether the active pill currently accepts input.
func (s *Session) movable() bool {
	return s.running && !s.over && s.pill != nil
}

// descend moves the pill down one row or locks it in place.
func (s *Session) descend() {
	if s.CanOccupy(s.pill.Row+1, s.pill.Col, s.pill.Orientation) {
		s.pill.Row++
		return
	}
	s.lock()
}

// lock writes the pill into the board and runs the post-lock sequence:
// resolve to fixed point, update score and virus count, spawn the next
// pill, evaluate win.
func (s *Session) lock() {
	r1, c1, r2, c2 := s.pill.Cells()
	s.board.Set(r1, c1, PillCell(s.pill.AnchorColor()))
	s.board.Set(r2, c2, PillCell(s.pill.OffsetColor()))
	s.pill = nil
	s.placed++

	res := Resolve(s.board)
	s.score += res.Removed * s.rules.PointsPerCell
	s.virusCount -= res.Viruses
	if s.virusCount < 0 {
		s.virusCount = 0
	}

	if s.virusCount == 0 {
		s.over = true
		s.won = true
		s.running = false
		return
	}

	s.spawnPill()
}

// spawnRow/spawnCol are derived from the board: pills enter at the top
// row, anchored one column left of center, lying horizontally.
func (s *Session) spawnPosition() (row, col int) {
	return 0, s.board.Width()/2 - 1
}

// spawnPill puts the previewed pill into play and rolls a new preview.
// When the spawn cells are occupied the board is full: the game ends as a
// loss and no pill spawns.
func (s *Session) spawnPill() {
	row, col := s.spawnPosition()
	if !s.CanOccupy(row, col, Horizontal) {
		s.over = true
		s.won = false
		s.running = false
		return
	}

	s.pill = &Pill{
		FirstColor:  s.nextColors[0],
		SecondColor: s.nextColors[1],
		Row:         row,
		Col:         col,
		Orientation: Horizontal,
	}
	s.rollNext()
}

// rollNext draws the next pill's two colors independently, so same-color
// pairs are possible.
func (s *Session) rollNext() {
	s.nextColors[0] = Color(s.rng.Intn(ColorCount))
	s.nextColors[1] = Color(s.rng.Intn(ColorCount))
}
