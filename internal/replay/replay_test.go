package replay

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/game"
)

func TestParse(t *testing.T) {
	data := []byte(`
square_size: 50
clicks:
  - {x: 225, y: 325}
  - {square: e4, wait_ms: 1500}
`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.SquareSize != 50 {
		t.Errorf("SquareSize = %d, want 50", s.SquareSize)
	}
	if len(s.Clicks) != 2 {
		t.Fatalf("got %d clicks, want 2", len(s.Clicks))
	}
	if c := s.Clicks[0]; c.X != 225 || c.Y != 325 || c.WaitMS != 0 {
		t.Errorf("click 0 = %+v", c)
	}
	// e4 is file 4, screen row 4 at 50px squares; center is (225, 225).
	if c := s.Clicks[1]; c.X != 225 || c.Y != 225 || c.WaitMS != 1500 {
		t.Errorf("click 1 = %+v", c)
	}
}

func TestParseDefaultsSquareSize(t *testing.T) {
	s, err := Parse([]byte("clicks: []\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.SquareSize != DefaultSquareSize {
		t.Errorf("SquareSize = %d, want %d", s.SquareSize, DefaultSquareSize)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "clicks: [\n"},
		{"negative size", "square_size: -1\n"},
		{"negative wait", "clicks:\n  - {x: 1, y: 1, wait_ms: -5}\n"},
		{"bad square", "clicks:\n  - {square: z9}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, ErrBadScript) {
				t.Errorf("Parse error = %v, want ErrBadScript", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clicks.yaml")
	if err := os.WriteFile(path, []byte("clicks:\n  - {square: a1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c := s.Clicks[0]; c.X != 50 || c.Y != 750 {
		t.Errorf("a1 center = (%d,%d), want (50,750)", c.X, c.Y)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunOpening(t *testing.T) {
	s, err := Parse([]byte(`
clicks:
  - {square: e2, wait_ms: 3000}
  - {square: e4}
  - {square: e7, wait_ms: 5000}
  - {square: e5}
  - {square: g1, wait_ms: 2000}
  - {square: g1}
`))
	if err != nil {
		t.Fatal(err)
	}

	res := Run(s, board.NewBoard(), nil)

	want := []game.Outcome{game.Selected, game.Moved, game.Selected, game.Moved, game.Selected, game.Rejected}
	if len(res.Steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(res.Steps), len(want))
	}
	for i, w := range want {
		if res.Steps[i].Outcome != w {
			t.Errorf("step %d (%s) = %v, want %v", i, res.Steps[i].Square, res.Steps[i].Outcome, w)
		}
		wantPhase := game.Idle
		if w == game.Selected {
			wantPhase = game.PieceSelected
		}
		if res.Steps[i].Phase != wantPhase {
			t.Errorf("step %d phase = %v, want %v", i, res.Steps[i].Phase, wantPhase)
		}
	}

	if res.Turn != board.White {
		t.Errorf("Turn = %v, want White", res.Turn)
	}
	if res.White != 5*time.Second {
		t.Errorf("White = %v, want 5s", res.White)
	}
	if res.Black != 5*time.Second {
		t.Errorf("Black = %v, want 5s", res.Black)
	}
	if !strings.HasPrefix(res.FEN, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w") {
		t.Errorf("FEN = %q", res.FEN)
	}
}

func TestRunOffBoardClick(t *testing.T) {
	s := &Script{SquareSize: 100, Clicks: []Click{{X: 900, Y: 10}}}
	res := Run(s, board.NewBoard(), nil)
	if got := res.Steps[0]; got.Outcome != game.Ignored || got.Square != board.NoSquare {
		t.Errorf("off-board step = %+v", got)
	}
}

func TestResultWrite(t *testing.T) {
	res := &Result{
		Steps: []Step{{X: 450, Y: 650, Square: board.MustParseSquare("e2"), Outcome: game.Selected, Phase: game.PieceSelected}},
		FEN:   "8/8/8/8/8/8/8/8 w - - 0 1",
		Turn:  board.White,
		White: 75 * time.Second,
		Black: 2 * time.Second,
	}
	var buf bytes.Buffer
	if err := res.Write(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"(450,650) e2", "selected", "PieceSelected", "turn  White", "White: 01:15", "Black: 00:02"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
