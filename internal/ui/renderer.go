package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/config"
	"github.com/hailam/chessview/internal/game"
)

// Clock display colors and margin, from the start screen palette.
var (
	affirmativeColor = color.RGBA{0, 255, 0, 255}
	warningColor     = color.RGBA{255, 0, 0, 255}
	titleColor       = color.RGBA{255, 255, 255, 255}
)

const clockMargin = 20

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	TargetSquare   color.RGBA
	Background     color.RGBA
}

// ThemeFromConfig converts validated config colors.
func ThemeFromConfig(c config.ThemeConfig) *Theme {
	return &Theme{
		LightSquare:    config.MustColor(c.LightSquare),
		DarkSquare:     config.MustColor(c.DarkSquare),
		SelectedSquare: config.MustColor(c.Selected),
		TargetSquare:   config.MustColor(c.Target),
		Background:     config.MustColor(c.Background),
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites *SpriteManager
	fonts   *Fonts
	theme   *Theme
	geom    board.Geometry
}

// NewRenderer creates a renderer for the given board geometry.
func NewRenderer(geom board.Geometry, theme *Theme, fonts *Fonts) (*Renderer, error) {
	sprites, err := NewSpriteManager(geom.SquareSize)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		sprites: sprites,
		fonts:   fonts,
		theme:   theme,
		geom:    geom,
	}, nil
}

// DrawSession renders one game frame: squares, highlights, pieces, clocks.
// Pieces are drawn after every fill so nothing covers them.
func (r *Renderer) DrawSession(screen *ebiten.Image, s *game.Session, showCoordinates bool) {
	r.DrawBoard(screen)
	r.DrawHighlights(screen, s.Selection(), s.LegalTargets())
	if showCoordinates {
		r.drawCoordinates(screen)
	}
	r.DrawPieces(screen, s.Rules())
	r.DrawClocks(screen, s.Elapsed(board.White), s.Elapsed(board.Black))
}

// DrawBoard draws the 64 squares. Screen row 0 holds rank 8.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := float32(r.geom.SquareSize)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := r.theme.LightSquare
			if (row+col)%2 != 0 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, float32(col)*size, float32(row)*size, size, size, c, false)
		}
	}
}

// DrawHighlights fills the selected square and its legal targets.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, targets board.SquareSet) {
	if selected == board.NoSquare {
		return
	}
	r.fillSquare(screen, selected, r.theme.SelectedSquare)
	for _, sq := range targets.Squares() {
		r.fillSquare(screen, sq, r.theme.TargetSquare)
	}
}

func (r *Renderer) fillSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	x, y := r.geom.SquareToPixel(sq)
	size := float32(r.geom.SquareSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
}

// DrawPieces draws every occupied square's sprite.
func (r *Renderer) DrawPieces(screen *ebiten.Image, rules board.Rules) {
	for sq := board.Square(0); sq < board.NoSquare; sq++ {
		p, ok := rules.PieceAt(sq)
		if !ok {
			continue
		}
		x, y := r.geom.SquareToPixel(sq)
		r.sprites.DrawPieceAt(screen, p, x, y)
	}
}

// DrawClocks draws White's clock top-left and Black's top-right.
func (r *Renderer) DrawClocks(screen *ebiten.Image, white, black time.Duration) {
	face := r.fonts.Clock
	whiteText := "White: " + game.FormatClock(white)
	blackText := "Black: " + game.FormatClock(black)

	op := &text.DrawOptions{}
	op.GeoM.Translate(clockMargin, clockMargin)
	op.ColorScale.ScaleWithColor(affirmativeColor)
	text.Draw(screen, whiteText, face, op)

	w, _ := MeasureText(blackText, face)
	op = &text.DrawOptions{}
	op.GeoM.Translate(float64(r.geom.BoardSize()-clockMargin)-w, clockMargin)
	op.ColorScale.ScaleWithColor(warningColor)
	text.Draw(screen, blackText, face, op)
}

// drawCoordinates labels files along the bottom edge and ranks along the left.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := r.fonts.Label
	size := r.geom.SquareSize
	for i := 0; i < 8; i++ {
		// Label color contrasts with the square it sits on.
		fileSq := board.NewSquare(i, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(i*size+size-10), float64(8*size-16))
		op.ColorScale.ScaleWithColor(r.contrast(fileSq))
		text.Draw(screen, string(rune('a'+i)), face, op)

		rankSq := board.NewSquare(0, 7-i)
		op = &text.DrawOptions{}
		op.GeoM.Translate(3, float64(i*size+2))
		op.ColorScale.ScaleWithColor(r.contrast(rankSq))
		text.Draw(screen, string(rune('8'-i)), face, op)
	}
}

func (r *Renderer) contrast(sq board.Square) color.RGBA {
	if (sq.File()+sq.Rank())%2 == 0 {
		// a1 parity: drawn with the dark color
		return r.theme.LightSquare
	}
	return r.theme.DarkSquare
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
