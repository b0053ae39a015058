// Package game implements the two-player game session: the point-and-click
// move selection protocol and the per-side thinking clocks.
package game

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hailam/chessview/internal/board"
)

// Phase is the state of the move selection protocol.
type Phase int

const (
	// Idle waits for a click on a piece.
	Idle Phase = iota
	// PieceSelected waits for a destination click.
	PieceSelected
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PieceSelected {
		return "PieceSelected"
	}
	return "Idle"
}

// Outcome describes what a single click did.
type Outcome int

const (
	// Ignored: the click changed nothing (off board, or an empty square while Idle).
	Ignored Outcome = iota
	// Selected: a piece was picked up.
	Selected
	// Moved: a legal move was pushed and the turn flipped.
	Moved
	// Rejected: the destination was not legal; the selection was dropped.
	Rejected
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Moved:
		return "moved"
	case Rejected:
		return "rejected"
	default:
		return "ignored"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithNow replaces the wall clock used for the thinking clocks.
func WithNow(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// Session is one game from the menu's Start click until the window closes.
// It is not safe for concurrent use; the render loop owns it.
type Session struct {
	id    string
	rules board.Rules
	geom  board.Geometry
	now   func() time.Time
	log   *zap.Logger

	turn     board.Color
	selected board.Square
	targets  board.SquareSet

	clock   *Clock
	started time.Time
	moves   int
}

// NewSession starts a session on rules with the given board geometry.
func NewSession(rules board.Rules, geom board.Geometry, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		rules:    rules,
		geom:     geom,
		now:      time.Now,
		log:      zap.NewNop(),
		selected: board.NoSquare,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.turn = rules.Turn()
	if s.turn == board.NoColor {
		s.turn = board.White
	}
	s.started = s.now()
	s.clock = NewClock(s.started)
	s.log = s.log.With(zap.String("session", s.id))
	s.log.Info("session started", zap.String("fen", rules.FEN()), zap.Stringer("turn", s.turn))
	return s
}

// ClickAt feeds a primary-button press at pixel (x, y).
func (s *Session) ClickAt(x, y int) Outcome {
	return s.Click(s.geom.PixelToSquare(x, y))
}

// Click feeds a primary-button press on sq. NoSquare means the click landed
// outside the board and is ignored in every phase.
func (s *Session) Click(sq board.Square) Outcome {
	if !sq.IsValid() {
		return Ignored
	}

	if s.selected == board.NoSquare {
		if _, ok := s.rules.PieceAt(sq); !ok {
			return Ignored
		}
		s.selected = sq
		s.targets = board.Targets(s.rules.LegalMoves(), sq)
		s.log.Debug("piece selected", zap.Stringer("square", sq), zap.Int("targets", s.targets.Len()))
		return Selected
	}

	from := s.selected
	s.clearSelection()

	if !s.rules.IsLegal(from, sq) {
		s.log.Debug("move discarded", zap.Stringer("from", from), zap.Stringer("to", sq))
		return Rejected
	}
	if err := s.rules.PushMove(from, sq); err != nil {
		s.log.Warn("rules engine refused a legal move", zap.Stringer("from", from), zap.Stringer("to", sq), zap.Error(err))
		return Rejected
	}

	now := s.now()
	s.clock.Charge(s.turn, now)
	mover := s.turn
	s.turn = s.turn.Other()
	s.clock.Restart(s.turn, now)
	s.moves++

	s.log.Info("move played",
		zap.Stringer("side", mover),
		zap.Stringer("from", from),
		zap.Stringer("to", sq),
		zap.Duration("elapsed", s.clock.Elapsed(mover)),
	)
	return Moved
}

// Tick charges the side to move for the time since its last timestamp.
// Call once per frame after input has been processed.
func (s *Session) Tick() {
	s.clock.Charge(s.turn, s.now())
}

func (s *Session) clearSelection() {
	s.selected = board.NoSquare
	s.targets = 0
}

// Phase returns the selection protocol state.
func (s *Session) Phase() Phase {
	if s.selected == board.NoSquare {
		return Idle
	}
	return PieceSelected
}

// Selection returns the picked-up square, or NoSquare.
func (s *Session) Selection() board.Square {
	return s.selected
}

// LegalTargets returns the destinations of the selected piece.
func (s *Session) LegalTargets() board.SquareSet {
	return s.targets
}

// Turn returns the side whose clock is running.
func (s *Session) Turn() board.Color {
	return s.turn
}

// Elapsed returns the thinking time charged to side.
func (s *Session) Elapsed(side board.Color) time.Duration {
	return s.clock.Elapsed(side)
}

// Rules returns the board the session plays on.
func (s *Session) Rules() board.Rules {
	return s.rules
}

// Summary reports what the session has done so far.
func (s *Session) Summary() Summary {
	return Summary{
		ID:           s.id,
		StartedAt:    s.started,
		Moves:        s.moves,
		WhiteElapsed: s.clock.Elapsed(board.White),
		BlackElapsed: s.clock.Elapsed(board.Black),
	}
}

// Summary is the end-of-session record handed to storage.
type Summary struct {
	ID           string
	StartedAt    time.Time
	Moves        int
	WhiteElapsed time.Duration
	BlackElapsed time.Duration
}
