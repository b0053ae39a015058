// Package ui implements the chess viewer on top of Ebitengine.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessview/internal/game"
	"github.com/hailam/chessview/internal/menu"
	"github.com/hailam/chessview/internal/viewer"
)

// App implements ebiten.Game. It samples input, hands it to the viewer,
// and draws and plays whatever the viewer reports.
type App struct {
	width, height int

	viewer   *viewer.Viewer
	menu     *MenuView
	renderer *Renderer
	input    *InputHandler
	audio    *AudioManager
}

// NewApp creates the window application around v.
func NewApp(width, height int, v *viewer.Viewer, renderer *Renderer, fonts *Fonts) *App {
	return &App{
		width:    width,
		height:   height,
		viewer:   v,
		menu:     NewMenuView(v.Menu(), fonts),
		renderer: renderer,
		input:    NewInputHandler(),
		audio:    NewAudioManager(v.SoundEnabled()),
	}
}

// Update handles one frame of input and clock accounting.
func (a *App) Update() error {
	a.input.Update()

	if ebiten.IsWindowBeingClosed() && a.viewer.HandleClose() == menu.Quit {
		return ebiten.Termination
	}

	a.handleKeys()

	if a.viewer.Mode() == viewer.ModeMenu {
		a.menu.Update(a.input)
	}
	a.updateCursor()

	if x, y, ok := a.input.Click(); ok {
		ev, err := a.viewer.Click(x, y)
		if err != nil {
			return err
		}
		if ev.Action == menu.Quit {
			return ebiten.Termination
		}
		a.playFeedback(ev)
	}

	a.viewer.Tick()
	return nil
}

// handleKeys applies the preference toggles.
func (a *App) handleKeys() {
	if IsKeyJustPressed(ebiten.KeyS) {
		a.audio.SetEnabled(a.viewer.ToggleSound())
	}
	if IsKeyJustPressed(ebiten.KeyC) {
		a.viewer.ToggleCoordinates()
	}
}

func (a *App) playFeedback(ev viewer.Event) {
	switch ev.Outcome {
	case game.Moved:
		a.audio.Play(CueMove)
	case game.Rejected:
		if !ev.Reselect {
			a.audio.Play(CueReject)
		}
	}
}

// updateCursor sets the cursor shape based on what's being hovered.
func (a *App) updateCursor() {
	if a.viewer.Mode() == viewer.ModeMenu && a.menu.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the current screen.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.renderer.Theme().Background)

	switch a.viewer.Mode() {
	case viewer.ModeMenu:
		a.menu.Draw(screen, a.viewer.StatsLine())
	case viewer.ModeGame:
		a.renderer.DrawSession(screen, a.viewer.Session(), a.viewer.ShowCoordinates())
	}
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Close records any unfinished session and closes the store.
func (a *App) Close() {
	a.viewer.Close()
}
