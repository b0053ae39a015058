package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextButton is a line of menu text over a clickable region. Hit testing
// belongs to the menu controller; the button only tracks hover for drawing.
type TextButton struct {
	Label   string
	Region  image.Rectangle
	Color   color.RGBA
	hovered bool
}

// NewTextButton creates a button drawn over region.
func NewTextButton(label string, region image.Rectangle, c color.RGBA) *TextButton {
	return &TextButton{Label: label, Region: region, Color: c}
}

// Update refreshes the hover state from the cursor position.
func (b *TextButton) Update(input *InputHandler) {
	r := b.Region
	b.hovered = input.IsInBounds(r.Min.X, r.Min.Y, r.Dx()+1, r.Dy()+1)
}

// IsHovered returns true if the cursor is over the button.
func (b *TextButton) IsHovered() bool {
	return b.hovered
}

// Draw renders the label centered horizontally with its top at the region top.
func (b *TextButton) Draw(screen *ebiten.Image, face *text.GoTextFace, centerX int) {
	drawCentered(screen, b.Label, face, centerX, b.Region.Min.Y, b.Color)

	if b.hovered {
		r := b.Region
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, b.Color, false)
	}
}

// drawCentered draws s with its horizontal center at cx and its top at y.
func drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, cx, y int, c color.Color) {
	w, _ := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx)-w/2, float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
