package game

import (
	"fmt"
	"time"

	"github.com/hailam/chessview/internal/board"
)

// Clock accumulates per-side thinking time. It counts up and never resets
// during a session.
type Clock struct {
	elapsed [2]time.Duration
	start   [2]time.Time
}

// NewClock starts both sides' timestamps at now with nothing elapsed.
func NewClock(now time.Time) *Clock {
	return &Clock{start: [2]time.Time{now, now}}
}

// Charge adds the time since side's last timestamp to its accumulator and
// moves the timestamp to now.
func (c *Clock) Charge(side board.Color, now time.Time) {
	i := index(side)
	if delta := now.Sub(c.start[i]); delta > 0 {
		c.elapsed[i] += delta
	}
	c.start[i] = now
}

// Restart moves side's timestamp to now without charging it.
func (c *Clock) Restart(side board.Color, now time.Time) {
	c.start[index(side)] = now
}

// Elapsed returns the time charged to side so far.
func (c *Clock) Elapsed(side board.Color) time.Duration {
	return c.elapsed[index(side)]
}

func index(side board.Color) int {
	if side == board.Black {
		return 1
	}
	return 0
}

// FormatClock renders d truncated to whole seconds as MM:SS.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
