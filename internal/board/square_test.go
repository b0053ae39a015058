package board

import "testing"

func TestParseSquare(t *testing.T) {
	for sq := Square(0); sq < NoSquare; sq++ {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", sq.String(), err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %d, want %d", sq.String(), got, sq)
		}
	}

	for _, bad := range []string{"", "e", "e9", "i1", "E4", "e44"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) succeeded, want error", bad)
		}
	}
}

func TestNewSquareBounds(t *testing.T) {
	if sq := NewSquare(8, 0); sq != NoSquare {
		t.Errorf("NewSquare(8, 0) = %d, want NoSquare", sq)
	}
	if sq := NewSquare(0, -1); sq != NoSquare {
		t.Errorf("NewSquare(0, -1) = %d, want NoSquare", sq)
	}
	sq := NewSquare(4, 1)
	if sq.File() != 4 || sq.Rank() != 1 || sq.String() != "e2" {
		t.Errorf("NewSquare(4, 1) = %s (file %d rank %d)", sq, sq.File(), sq.Rank())
	}
}

func TestSquareSet(t *testing.T) {
	var s SquareSet
	s = s.Add(MustParseSquare("e3")).Add(MustParseSquare("e4")).Add(MustParseSquare("e4"))
	s = s.Add(NoSquare)

	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
	if !s.Has(MustParseSquare("e3")) || !s.Has(MustParseSquare("e4")) {
		t.Errorf("set %v missing members", s.Squares())
	}
	if s.Has(MustParseSquare("e5")) || s.Has(NoSquare) {
		t.Error("set reports non-members")
	}
	got := s.Squares()
	if len(got) != 2 || got[0].String() != "e3" || got[1].String() != "e4" {
		t.Errorf("Squares = %v", got)
	}
}

func TestPieceString(t *testing.T) {
	if s := (Piece{Color: White, Kind: Knight}).String(); s != "N" {
		t.Errorf("white knight = %q", s)
	}
	if s := (Piece{Color: Black, Kind: Queen}).String(); s != "q" {
		t.Errorf("black queen = %q", s)
	}
	if len(AllPieces()) != 12 {
		t.Errorf("AllPieces has %d entries", len(AllPieces()))
	}
}
