package board

import "testing"

func TestPixelToSquare(t *testing.T) {
	g := NewGeometry(800)

	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"top left is a8", 0, 0, "a8"},
		{"bottom left is a1", 0, 799, "a1"},
		{"top right is h8", 799, 0, "h8"},
		{"bottom right is h1", 799, 799, "h1"},
		{"e2 pawn", 450, 650, "e2"},
		{"e4 target", 420, 420, "e4"},
		{"square edge belongs to next square", 100, 100, "b7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.PixelToSquare(tt.x, tt.y)
			if got.String() != tt.want {
				t.Errorf("PixelToSquare(%d, %d) = %s, want %s", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPixelToSquareOffBoard(t *testing.T) {
	g := NewGeometry(800)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {800, 0}, {0, 800}, {-50, -50}, {1000, 1000}} {
		if sq := g.PixelToSquare(p[0], p[1]); sq != NoSquare {
			t.Errorf("PixelToSquare(%d, %d) = %s, want NoSquare", p[0], p[1], sq)
		}
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	for _, size := range []int{640, 800} {
		g := NewGeometry(size)
		for sq := Square(0); sq < NoSquare; sq++ {
			x, y := g.SquareToPixel(sq)
			if got := g.PixelToSquare(x, y); got != sq {
				t.Errorf("size %d: square %s -> (%d, %d) -> %s", size, sq, x, y, got)
			}
			// Any pixel inside the square maps back to it.
			last := g.SquareSize - 1
			if got := g.PixelToSquare(x+last, y+last); got != sq {
				t.Errorf("size %d: far corner of %s maps to %s", size, sq, got)
			}
		}
	}
}

func TestSquareToPixelFlipsRanks(t *testing.T) {
	g := NewGeometry(800)
	x, y := g.SquareToPixel(MustParseSquare("a8"))
	if x != 0 || y != 0 {
		t.Errorf("a8 at (%d, %d), want (0, 0)", x, y)
	}
	x, y = g.SquareToPixel(MustParseSquare("h1"))
	if x != 700 || y != 700 {
		t.Errorf("h1 at (%d, %d), want (700, 700)", x, y)
	}
}
