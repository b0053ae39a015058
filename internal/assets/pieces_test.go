package assets

import (
	"testing"

	"github.com/hailam/chessview/internal/board"
)

func TestPiecePath(t *testing.T) {
	tests := []struct {
		p    board.Piece
		want string
	}{
		{board.Piece{Color: board.White, Kind: board.Pawn}, "pieces/wP.svg"},
		{board.Piece{Color: board.Black, Kind: board.Knight}, "pieces/bN.svg"},
		{board.Piece{Color: board.Black, Kind: board.King}, "pieces/bK.svg"},
	}
	for _, tt := range tests {
		if got := PiecePath(tt.p); got != tt.want {
			t.Errorf("PiecePath(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestRasterizeAllPieces(t *testing.T) {
	const size = 64
	for _, p := range board.AllPieces() {
		img, err := RasterizePiece(p, size)
		if err != nil {
			t.Fatalf("RasterizePiece(%v): %v", p, err)
		}
		if img.Bounds().Dx() != size || img.Bounds().Dy() != size {
			t.Errorf("%v: bounds %v", p, img.Bounds())
		}
		opaque := 0
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] > 0 {
				opaque++
			}
		}
		if opaque == 0 {
			t.Errorf("%v rendered fully transparent", p)
		}
	}
}

func TestRasterizeRejectsBadSize(t *testing.T) {
	if _, err := RasterizePiece(board.Piece{Color: board.White, Kind: board.Queen}, 0); err == nil {
		t.Error("expected error for zero size")
	}
}
