package board

import (
	"fmt"

	"github.com/corentings/chess/v2"
)

// Rules is the rules-engine contract consumed by the game session.
type Rules interface {
	// PieceAt reports the piece on sq, if any.
	PieceAt(sq Square) (Piece, bool)
	// LegalMoves enumerates every move legal in the current position.
	LegalMoves() []Move
	// IsLegal reports whether from→to is currently legal.
	IsLegal(from, to Square) bool
	// PushMove plays from→to. It wraps ErrIllegalMove when the move is not legal.
	PushMove(from, to Square) error
	// Turn returns the side to move.
	Turn() Color
	// FEN returns the current position.
	FEN() string
}

// Board implements Rules on top of github.com/corentings/chess/v2.
type Board struct {
	game *chess.Game
}

var _ Rules = (*Board)(nil)

// NewBoard returns a board in the standard starting position.
func NewBoard() *Board {
	return &Board{game: chess.NewGame()}
}

// NewBoardFromFEN returns a board set up from a FEN string.
func NewBoardFromFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen: %w", err)
	}
	return &Board{game: chess.NewGame(opt)}, nil
}

// PieceAt reports the piece on sq.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.IsValid() {
		return NoPiece, false
	}
	p := b.game.Position().Board().Piece(toEngineSquare(sq))
	if p == chess.NoPiece {
		return NoPiece, false
	}
	kind := fromEngineKind(p.Type())
	if kind == NoKind {
		return NoPiece, false
	}
	return Piece{Color: fromEngineColor(p.Color()), Kind: kind}, true
}

// LegalMoves enumerates the legal moves of the side to move.
func (b *Board) LegalMoves() []Move {
	valid := b.game.ValidMoves()
	moves := make([]Move, 0, len(valid))
	for _, m := range valid {
		moves = append(moves, Move{
			From:      fromEngineSquare(m.S1()),
			To:        fromEngineSquare(m.S2()),
			Promotion: fromEngineKind(m.Promo()),
		})
	}
	return moves
}

// IsLegal reports whether from→to is a legal move.
func (b *Board) IsLegal(from, to Square) bool {
	_, ok := b.find(from, to)
	return ok
}

// PushMove plays from→to. Promotions are played as queen promotions.
func (b *Board) PushMove(from, to Square) error {
	m, ok := b.find(from, to)
	if !ok {
		return fmt.Errorf("%s%s: %w", from, to, ErrIllegalMove)
	}
	if err := b.game.PushNotationMove(m.UCI(), chess.UCINotation{}, nil); err != nil {
		return fmt.Errorf("push %s: %w", m.UCI(), err)
	}
	return nil
}

// Turn returns the side to move.
func (b *Board) Turn() Color {
	return fromEngineColor(b.game.Position().Turn())
}

// FEN returns the current position in FEN.
func (b *Board) FEN() string {
	return b.game.FEN()
}

// find returns the legal move from→to, preferring a queen promotion when
// several promotions share the same squares.
func (b *Board) find(from, to Square) (Move, bool) {
	if !from.IsValid() || !to.IsValid() {
		return Move{}, false
	}
	var (
		found Move
		ok    bool
	)
	for _, m := range b.LegalMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if !m.IsPromotion() || m.Promotion == Queen {
			return m, true
		}
		if !ok {
			found, ok = m, true
		}
	}
	return found, ok
}

func toEngineSquare(sq Square) chess.Square {
	return chess.NewSquare(chess.File(sq.File()), chess.Rank(sq.Rank()))
}

func fromEngineSquare(sq chess.Square) Square {
	return NewSquare(int(sq.File()), int(sq.Rank()))
}

func fromEngineColor(c chess.Color) Color {
	switch c {
	case chess.White:
		return White
	case chess.Black:
		return Black
	default:
		return NoColor
	}
}

func fromEngineKind(t chess.PieceType) PieceKind {
	switch t {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	default:
		return NoKind
	}
}
