package menu

import "testing"

func TestHandleClick(t *testing.T) {
	c := NewController(800, 800)

	tests := []struct {
		name string
		x, y int
		want Action
	}{
		{"start center", 400, 420, StartGame},
		{"start top left corner", 300, 400, StartGame},
		{"start bottom right corner", 500, 440, StartGame},
		{"quit center", 400, 550, Quit},
		{"quit top edge", 350, 533, Quit},
		{"quit bottom edge", 450, 573, Quit},
		{"above start", 400, 399, None},
		{"between regions", 400, 480, None},
		{"below quit", 400, 574, None},
		{"left of start", 299, 420, None},
		{"right of quit", 501, 550, None},
		{"title", 400, 200, None},
		{"origin", 0, 0, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.HandleClick(tt.x, tt.y); got != tt.want {
				t.Errorf("HandleClick(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHandleClose(t *testing.T) {
	if got := NewController(800, 800).HandleClose(); got != Quit {
		t.Errorf("HandleClose = %v, want Quit", got)
	}
}

func TestLayoutFollowsWindow(t *testing.T) {
	c := NewController(640, 480)
	if got := c.HandleClick(320, 250); got != StartGame {
		t.Errorf("start on 640x480 = %v", got)
	}
	if got := c.HandleClick(320, 330); got != Quit {
		t.Errorf("quit on 640x480 = %v", got)
	}
	if c.Title().Y != 120 || c.Start().Y != 240 || c.QuitItem().Y != 320 {
		t.Errorf("rows = %d %d %d", c.Title().Y, c.Start().Y, c.QuitItem().Y)
	}
	if c.Title().Label != "Chess Game" || c.Start().Label != "Start Game" || c.QuitItem().Label != "Quit" {
		t.Error("unexpected menu labels")
	}
	if c.Width() != 640 || c.Height() != 480 {
		t.Errorf("size = %dx%d, want 640x480", c.Width(), c.Height())
	}
}
