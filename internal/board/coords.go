package board

// Geometry maps between window pixels and board squares. The board is drawn
// from the window origin with rank 8 on the top row.
type Geometry struct {
	SquareSize int
}

// NewGeometry returns the geometry for a square board of boardSize pixels.
func NewGeometry(boardSize int) Geometry {
	return Geometry{SquareSize: boardSize / 8}
}

// BoardSize returns the board edge length in pixels.
func (g Geometry) BoardSize() int {
	return g.SquareSize * 8
}

// PixelToSquare converts a pixel position to the square under it.
// Positions outside the board yield NoSquare.
func (g Geometry) PixelToSquare(x, y int) Square {
	if g.SquareSize <= 0 || x < 0 || y < 0 || x >= g.BoardSize() || y >= g.BoardSize() {
		return NoSquare
	}
	file := x / g.SquareSize
	rank := 7 - y/g.SquareSize
	return NewSquare(file, rank)
}

// SquareToPixel returns the top-left pixel of the square.
func (g Geometry) SquareToPixel(sq Square) (x, y int) {
	return sq.File() * g.SquareSize, (7 - sq.Rank()) * g.SquareSize
}
