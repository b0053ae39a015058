package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessview/internal/menu"
)

var (
	statsColor = color.RGBA{200, 200, 200, 255}
	hintColor  = color.RGBA{140, 140, 140, 255}
)

const keyHint = "S: sound   C: coordinates"

// MenuView draws the start screen laid out by a menu.Controller.
type MenuView struct {
	ctrl  *menu.Controller
	fonts *Fonts
	start *TextButton
	quit  *TextButton
}

// NewMenuView creates the start screen view.
func NewMenuView(ctrl *menu.Controller, fonts *Fonts) *MenuView {
	return &MenuView{
		ctrl:  ctrl,
		fonts: fonts,
		start: NewTextButton(ctrl.Start().Label, ctrl.StartRegion(), affirmativeColor),
		quit:  NewTextButton(ctrl.QuitItem().Label, ctrl.QuitRegion(), warningColor),
	}
}

// Update tracks hover over the two buttons.
func (mv *MenuView) Update(input *InputHandler) {
	mv.start.Update(input)
	mv.quit.Update(input)
}

// AnyButtonHovered reports whether the cursor is over Start or Quit.
func (mv *MenuView) AnyButtonHovered() bool {
	return mv.start.IsHovered() || mv.quit.IsHovered()
}

// Draw renders the title, both buttons, the lifetime stats line (if any)
// and the key hint.
func (mv *MenuView) Draw(screen *ebiten.Image, stats string) {
	cx := mv.ctrl.Width() / 2
	title := mv.ctrl.Title()
	drawCentered(screen, title.Label, mv.fonts.Menu, cx, title.Y, titleColor)
	mv.start.Draw(screen, mv.fonts.Menu, cx)
	mv.quit.Draw(screen, mv.fonts.Menu, cx)

	h := mv.ctrl.Height()
	if stats != "" {
		drawCentered(screen, stats, mv.fonts.Label, cx, h*5/6, statsColor)
	}
	drawCentered(screen, keyHint, mv.fonts.Label, cx, h-30, hintColor)
}
