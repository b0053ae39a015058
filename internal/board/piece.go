package board

// Color represents the color of a piece or the side to move.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceKind represents the type of a chess piece.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoKind PieceKind = 6
)

// String returns the piece kind name.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Letter returns the lowercase letter used for the kind in UCI and asset names.
func (k PieceKind) Letter() byte {
	if k >= NoKind {
		return ' '
	}
	return "pnbrqk"[k]
}

// Piece is a (color, kind) pair, the key for piece sprites.
type Piece struct {
	Color Color
	Kind  PieceKind
}

// NoPiece is the zero-occupancy value.
var NoPiece = Piece{Color: NoColor, Kind: NoKind}

// String returns the FEN letter: uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p.Kind >= NoKind {
		return " "
	}
	b := p.Kind.Letter()
	if p.Color == White {
		b -= 'a' - 'A'
	}
	return string(b)
}

// AllPieces lists the twelve colored pieces, white first.
func AllPieces() []Piece {
	out := make([]Piece, 0, 12)
	for _, c := range []Color{White, Black} {
		for k := Pawn; k < NoKind; k++ {
			out = append(out, Piece{Color: c, Kind: k})
		}
	}
	return out
}
