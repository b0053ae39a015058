// Package replay drives a game session from a scripted list of clicks on a
// simulated clock, without opening a window.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/game"
)

// DefaultSquareSize matches an 800 pixel window.
const DefaultSquareSize = 100

// ErrBadScript is wrapped by every script validation failure.
var ErrBadScript = errors.New("bad replay script")

// Click is one primary-button press. Square, when set, overrides X and Y
// with the center of that square.
type Click struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Square string `yaml:"square,omitempty"`
	WaitMS int    `yaml:"wait_ms"`
}

// Script is a replay file.
type Script struct {
	SquareSize int     `yaml:"square_size"`
	Clicks     []Click `yaml:"clicks"`
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScript, err)
	}
	if s.SquareSize == 0 {
		s.SquareSize = DefaultSquareSize
	}
	if s.SquareSize < 0 {
		return nil, fmt.Errorf("%w: square_size %d", ErrBadScript, s.SquareSize)
	}

	geom := board.Geometry{SquareSize: s.SquareSize}
	for i := range s.Clicks {
		c := &s.Clicks[i]
		if c.WaitMS < 0 {
			return nil, fmt.Errorf("%w: click %d: negative wait_ms", ErrBadScript, i)
		}
		if c.Square == "" {
			continue
		}
		sq, err := board.ParseSquare(c.Square)
		if err != nil {
			return nil, fmt.Errorf("%w: click %d: %v", ErrBadScript, i, err)
		}
		x, y := geom.SquareToPixel(sq)
		c.X, c.Y = x+s.SquareSize/2, y+s.SquareSize/2
	}
	return &s, nil
}

// LoadFile reads and parses a script from disk.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return Parse(data)
}

// Step records what one click did.
type Step struct {
	X, Y    int
	Square  board.Square
	Outcome game.Outcome
	Phase   game.Phase // after the click
}

// Result is the state after the last click.
type Result struct {
	Steps []Step
	FEN   string
	Turn  board.Color
	White time.Duration
	Black time.Duration
}

// Run plays the script against rules. Before each click the simulated clock
// advances by wait_ms and the session ticks, as a frame would.
func Run(s *Script, rules board.Rules, log *zap.Logger) *Result {
	if log == nil {
		log = zap.NewNop()
	}
	now := time.Unix(0, 0).UTC()
	clock := func() time.Time { return now }

	geom := board.Geometry{SquareSize: s.SquareSize}
	sess := game.NewSession(rules, geom, game.WithNow(clock), game.WithLogger(log))

	res := &Result{Steps: make([]Step, 0, len(s.Clicks))}
	for _, c := range s.Clicks {
		now = now.Add(time.Duration(c.WaitMS) * time.Millisecond)
		sess.Tick()
		out := sess.ClickAt(c.X, c.Y)
		res.Steps = append(res.Steps, Step{
			X:       c.X,
			Y:       c.Y,
			Square:  geom.PixelToSquare(c.X, c.Y),
			Outcome: out,
			Phase:   sess.Phase(),
		})
	}
	sess.Tick()

	res.FEN = rules.FEN()
	res.Turn = sess.Turn()
	res.White = sess.Elapsed(board.White)
	res.Black = sess.Elapsed(board.Black)
	return res
}

// Write prints one line per click followed by the final position and clocks.
func (r *Result) Write(w io.Writer) error {
	for i, st := range r.Steps {
		if _, err := fmt.Fprintf(w, "%3d  (%d,%d) %-4s %-9s %s\n", i+1, st.X, st.Y, st.Square, st.Outcome, st.Phase); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "fen   %s\nturn  %s\nWhite: %s\nBlack: %s\n",
		r.FEN, r.Turn, game.FormatClock(r.White), game.FormatClock(r.Black))
	return err
}
