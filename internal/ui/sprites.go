package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessview/internal/assets"
	"github.com/hailam/chessview/internal/board"
)

// SpriteManager holds one pre-scaled image per (color, kind).
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	renderScale float64 // Render at higher resolution for quality
}

// NewSpriteManager rasterizes every piece for squares of the given size.
// A missing or malformed asset is a startup fault.
func NewSpriteManager(size int) (*SpriteManager, error) {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		renderScale: 2.0,
	}
	renderSize := int(float64(size) * sm.renderScale)
	for _, p := range board.AllPieces() {
		rgba, err := assets.RasterizePiece(p, renderSize)
		if err != nil {
			return nil, err
		}
		sm.pieces[p] = ebiten.NewImageFromImage(rgba)
	}
	return sm, nil
}

// DrawPieceAt draws a piece with its top-left corner at (x, y).
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	sprite := sm.pieces[p]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
