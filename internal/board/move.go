package board

import "errors"

// ErrIllegalMove is returned when a push names a move the rules engine does
// not currently allow.
var ErrIllegalMove = errors.New("illegal move")

// Move is a legal move as reported by the rules engine.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind // NoKind unless the move promotes
}

// IsPromotion returns true if the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// UCI returns the move in UCI long algebraic form (e.g., "e7e8q").
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter())
	}
	return s
}

// String returns the UCI form.
func (m Move) String() string {
	return m.UCI()
}

// Targets collects the destinations of the moves leaving from.
func Targets(moves []Move, from Square) SquareSet {
	var set SquareSet
	for _, m := range moves {
		if m.From == from {
			set = set.Add(m.To)
		}
	}
	return set
}
