package game

import "time"

// ActivePiece is the currently falling piece: its (possibly rotated) shape,
// the board position of the shape matrix's top-left corner, and the
// originating type for color and catalog lookups.
type ActivePiece struct {
	Type  PieceType
	Shape Shape
	Col   int
	Row   int
}

// Session owns all mutable game state for one play-through: the board, the
// active piece, score, lines, level, drop cadence, and the terminal game-over
// flag. It is single-owner state; the game loop is its only mutator.
type Session struct {
	board  *Board
	active *ActivePiece
	pick   PickFunc

	score        int
	lines        int
	level        int
	dropInterval time.Duration
	over         bool
}

// Option configures a Session.
type Option func(*Session)

// WithPicker overrides the piece selection policy. The default draws uniformly
// at random.
func WithPicker(pick PickFunc) Option {
	return func(s *Session) { s.pick = pick }
}

// NewSession creates a session with an empty w×h board, level 1, score 0, and
// an already spawned first piece.
func NewSession(w, h int, opts ...Option) *Session {
	s := &Session{
		board: NewBoard(w, h),
		pick:  RandomPick,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset re-initializes the session in place: fresh empty board, zeroed score
// and lines, level 1, default drop interval, new spawned piece.
func (s *Session) Reset() {
	s.board.Reset()
	s.score = 0
	s.lines = 0
	s.level = 1
	s.dropInterval = BaseDropInterval
	s.over = false
	s.active = nil
	s.spawn()
}

func (s *Session) Board() *Board { return s.board }

func (s *Session) Active() *ActivePiece { return s.active }

func (s *Session) Score() int { return s.score }

func (s *Session) Lines() int { return s.lines }

func (s *Session) Level() int { return s.level }

func (s *Session) DropInterval() time.Duration { return s.dropInterval }

func (s *Session) Over() bool { return s.over }

// spawn draws the next piece and places it horizontally centered at row 0.
// If the fresh piece immediately collides the board is too full to accept it
// and the session transitions to game over without merging or scoring.
func (s *Session) spawn() {
	t := s.pick()
	shape := ShapeOf(t)
	piece := &ActivePiece{
		Type:  t,
		Shape: shape,
		Col:   s.board.Width()/2 - shape.Width()/2,
		Row:   0,
	}
	s.active = piece
	if Collides(s.board, piece.Shape, piece.Col, piece.Row) {
		s.over = true
	}
}

// MoveHorizontal shifts the active piece by dx columns. A colliding move is
// silently reverted.
func (s *Session) MoveHorizontal(dx int) {
	if s.over || s.active == nil {
		return
	}
	s.active.Col += dx
	if Collides(s.board, s.active.Shape, s.active.Col, s.active.Row) {
		s.active.Col -= dx
	}
}

// MoveDown advances the active piece one row. It returns true while the piece
// is still falling. When the step collides, the piece locks at its last valid
// position: it is merged into the board, full rows are cleared and scored, and
// the next piece spawns (or the session ends); MoveDown then returns false.
func (s *Session) MoveDown() bool {
	if s.over || s.active == nil {
		return false
	}
	s.active.Row++
	if Collides(s.board, s.active.Shape, s.active.Col, s.active.Row) {
		s.active.Row--
		s.lock()
		return false
	}
	return true
}

// Rotate turns the active piece 90 degrees clockwise. If the rotated shape
// collides at the current anchor the rotation is rejected and the piece is
// left bit-for-bit unchanged. An accepted rotation is clamped back inside the
// right edge if it extends past it.
func (s *Session) Rotate() {
	if s.over || s.active == nil {
		return
	}
	rotated := s.active.Shape.Rotated()
	if Collides(s.board, rotated, s.active.Col, s.active.Row) {
		return
	}
	s.active.Shape = rotated
	if s.active.Col+rotated.Width() > s.board.Width() {
		s.active.Col = s.board.Width() - rotated.Width()
	}
}

// SoftDrop performs one player-initiated downward step, scoring it if the
// piece kept falling.
func (s *Session) SoftDrop() {
	if s.MoveDown() {
		s.score += SoftDropPoints
	}
}

// HardDrop drops the piece until it locks, scoring every successful downward
// step before the lock.
func (s *Session) HardDrop() {
	for s.MoveDown() {
		s.score += HardDropPoints
	}
}

// lock merges the active piece, clears and scores full rows, re-derives level
// and drop cadence from cumulative lines, and spawns the next piece.
func (s *Session) lock() {
	s.board.Merge(s.active.Shape, s.active.Col, s.active.Row, s.active.Type)
	n := s.board.ClearFullRows()
	s.score += LineClearPoints(n, s.level)
	s.lines += n
	// Re-derived after every lock, cleared lines or not, so level and speed
	// always agree with the cumulative line count.
	s.level = LevelForLines(s.lines)
	s.dropInterval = DropIntervalForLevel(s.level)
	s.spawn()
}
