// Package board holds the value types shared by the session and the renderer,
// the pixel/square coordinate transform, and the adapter over the rules engine.
package board

import "fmt"

// Square is a board cell packed as rank*8+file: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// NoSquare marks an absent square (no selection, off-board click).
const NoSquare Square = 64

// NumSquares is the number of cells on the board.
const NumSquares = 64

// NewSquare creates a square from file and rank (0-indexed).
// Out of range coordinates yield NoSquare.
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// IsValid returns true if the square is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic name of the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	sq := NewSquare(int(s[0])-'a', int(s[1])-'1')
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return sq, nil
}

// MustParseSquare is ParseSquare for literals known to be valid.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// SquareSet is an unordered set of squares.
type SquareSet uint64

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.IsValid() {
		return s
	}
	return s | 1<<sq
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.IsValid() && s&(1<<sq) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	n := 0
	for x := s; x != 0; x &= x - 1 {
		n++
	}
	return n
}

// Squares lists the members of the set from A1 to H8.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for sq := Square(0); sq < NoSquare; sq++ {
		if s.Has(sq) {
			out = append(out, sq)
		}
	}
	return out
}
