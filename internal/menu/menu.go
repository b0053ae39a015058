// Package menu implements the start screen controller: two fixed hit regions
// that either start a game or quit.
package menu

import "image"

// Action is what the menu asks the application to do next.
type Action int

const (
	// None keeps the menu on screen.
	None Action = iota
	// StartGame enters a fresh game session.
	StartGame
	// Quit terminates the process.
	Quit
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case StartGame:
		return "start"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// Region sizes shared by every window size.
const (
	RegionHalfWidth = 100
	RegionHeight    = 40
)

// Item is one line of menu text with its anchor row.
type Item struct {
	Label string
	Y     int
}

// Controller holds the hit regions for a window of a given size.
type Controller struct {
	width, height int
	start         image.Rectangle
	quit          image.Rectangle
}

// NewController lays the menu out for a width×height window.
func NewController(width, height int) *Controller {
	return &Controller{
		width:  width,
		height: height,
		start:  region(width, height/2),
		quit:   region(width, height*2/3),
	}
}

// region returns a band centered horizontally starting at row top. Max is
// inclusive for hit testing.
func region(width, top int) image.Rectangle {
	return image.Rect(width/2-RegionHalfWidth, top, width/2+RegionHalfWidth, top+RegionHeight)
}

// HandleClick maps a primary-button press at (x, y) to an action.
func (c *Controller) HandleClick(x, y int) Action {
	switch {
	case contains(c.start, x, y):
		return StartGame
	case contains(c.quit, x, y):
		return Quit
	default:
		return None
	}
}

// HandleClose maps a window-close request to an action.
func (c *Controller) HandleClose() Action {
	return Quit
}

func contains(r image.Rectangle, x, y int) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

// StartRegion returns the Start hit region.
func (c *Controller) StartRegion() image.Rectangle {
	return c.start
}

// QuitRegion returns the Quit hit region.
func (c *Controller) QuitRegion() image.Rectangle {
	return c.quit
}

// Title returns the heading row. Rows are centered horizontally when drawn.
func (c *Controller) Title() Item {
	return Item{Label: "Chess Game", Y: c.height / 4}
}

// Start returns the affirmative row, drawn on top of the Start region.
func (c *Controller) Start() Item {
	return Item{Label: "Start Game", Y: c.start.Min.Y}
}

// QuitItem returns the warning row, drawn on top of the Quit region.
func (c *Controller) QuitItem() Item {
	return Item{Label: "Quit", Y: c.quit.Min.Y}
}

// Width returns the window width the menu was laid out for.
func (c *Controller) Width() int {
	return c.width
}

// Height returns the window height the menu was laid out for.
func (c *Controller) Height() int {
	return c.height
}
