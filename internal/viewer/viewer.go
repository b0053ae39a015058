// Package viewer is the application state machine behind the window: menu or
// game mode, the running session, the user's preferences and lifetime stats.
// It has no display dependency; the ui package feeds it clicks and key
// toggles and draws what it reports.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/game"
	"github.com/hailam/chessview/internal/menu"
	"github.com/hailam/chessview/internal/storage"
)

// Mode is the screen currently owning input.
type Mode int

const (
	ModeMenu Mode = iota
	ModeGame
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeGame {
		return "game"
	}
	return "menu"
}

// Event reports what a click did. Action is set in menu mode, Outcome in
// game mode.
type Event struct {
	Action  menu.Action
	Outcome game.Outcome
	// Reselect marks a rejected click on the selected square itself.
	Reselect bool
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithStorage attaches a store. Without one nothing is persisted.
func WithStorage(s *storage.Storage) Option {
	return func(v *Viewer) {
		v.store = s
	}
}

// WithLogger sets the logger used by the viewer and its sessions.
func WithLogger(l *zap.Logger) Option {
	return func(v *Viewer) {
		if l != nil {
			v.log = l
		}
	}
}

// WithNow replaces the wall clock.
func WithNow(now func() time.Time) Option {
	return func(v *Viewer) {
		v.now = now
	}
}

// WithStartPosition makes every new session start from fen.
func WithStartPosition(fen string) Option {
	return func(v *Viewer) {
		v.newRules = func() (board.Rules, error) {
			return board.NewBoardFromFEN(fen)
		}
	}
}

// Viewer owns the menu controller, at most one session, and the
// persisted preferences and stats.
type Viewer struct {
	mode    Mode
	ctrl    *menu.Controller
	geom    board.Geometry
	session *game.Session

	store *storage.Storage
	prefs *storage.UserPreferences
	stats *storage.PlayStats

	log      *zap.Logger
	now      func() time.Time
	newRules func() (board.Rules, error)
}

// New creates a viewer for a width×height window, starting on the menu.
// Preferences and stats are loaded from the store when one is attached.
func New(width, height int, opts ...Option) *Viewer {
	v := &Viewer{
		mode:  ModeMenu,
		ctrl:  menu.NewController(width, height),
		geom:  board.NewGeometry(width),
		prefs: storage.DefaultPreferences(),
		log:   zap.NewNop(),
		now:   time.Now,
		newRules: func() (board.Rules, error) {
			return board.NewBoard(), nil
		},
	}
	for _, opt := range opts {
		opt(v)
	}
	v.load()
	return v
}

func (v *Viewer) load() {
	if v.store == nil {
		return
	}
	prefs, err := v.store.LoadPreferences()
	if err != nil {
		v.log.Warn("failed to load preferences", zap.Error(err))
	}
	v.prefs = prefs

	stats, err := v.store.LoadStats()
	if err != nil {
		v.log.Warn("failed to load stats", zap.Error(err))
		return
	}
	v.stats = stats
}

// Click feeds a primary-button press at (x, y) to the current mode.
// The error is non-nil only when a new session cannot be set up.
func (v *Viewer) Click(x, y int) (Event, error) {
	if v.mode == ModeMenu {
		action := v.ctrl.HandleClick(x, y)
		switch action {
		case menu.StartGame:
			if err := v.startSession(); err != nil {
				return Event{}, err
			}
		case menu.Quit:
			v.log.Info("quit from menu")
		}
		return Event{Action: action}, nil
	}

	from := v.session.Selection()
	to := v.geom.PixelToSquare(x, y)
	out := v.session.ClickAt(x, y)
	return Event{Outcome: out, Reselect: out == game.Rejected && to == from}, nil
}

func (v *Viewer) startSession() error {
	rules, err := v.newRules()
	if err != nil {
		return fmt.Errorf("start position: %w", err)
	}
	v.session = game.NewSession(rules, v.geom,
		game.WithNow(v.now),
		game.WithLogger(v.log),
	)
	v.mode = ModeGame
	return nil
}

// Tick runs the per-frame clock accounting of the running session.
func (v *Viewer) Tick() {
	if v.session != nil {
		v.session.Tick()
	}
}

// HandleClose handles a window-close request in either mode: the running
// session is recorded, then the menu decides what happens next.
func (v *Viewer) HandleClose() menu.Action {
	v.endSession()
	action := v.ctrl.HandleClose()
	v.log.Info("window closed", zap.Stringer("action", action))
	return action
}

// endSession records the running session, if any, and returns to the menu.
func (v *Viewer) endSession() {
	if v.session == nil {
		return
	}
	sum := v.session.Summary()
	v.session = nil
	v.mode = ModeMenu

	if v.store == nil {
		return
	}
	stats, err := v.store.RecordSession(storage.SessionRecord{
		ID:        sum.ID,
		StartedAt: sum.StartedAt,
		EndedAt:   v.now(),
		Moves:     sum.Moves,
		WhiteTime: sum.WhiteElapsed,
		BlackTime: sum.BlackElapsed,
	})
	if err != nil {
		v.log.Warn("failed to record session", zap.Error(err))
		return
	}
	v.stats = stats
	v.log.Info("session recorded",
		zap.String("session", sum.ID),
		zap.Int("moves", sum.Moves),
		zap.Int("sessions_played", stats.SessionsPlayed),
		zap.Duration("total_time", stats.TotalTime()),
	)
	v.savePreferences()
}

// ToggleSound flips the sound preference, persists it and returns the new value.
func (v *Viewer) ToggleSound() bool {
	v.prefs.SoundEnabled = !v.prefs.SoundEnabled
	v.savePreferences()
	return v.prefs.SoundEnabled
}

// ToggleCoordinates flips the board label preference, persists it and
// returns the new value.
func (v *Viewer) ToggleCoordinates() bool {
	v.prefs.ShowCoordinates = !v.prefs.ShowCoordinates
	v.savePreferences()
	return v.prefs.ShowCoordinates
}

func (v *Viewer) savePreferences() {
	if v.store == nil {
		return
	}
	if err := v.store.SavePreferences(v.prefs); err != nil {
		v.log.Warn("failed to save preferences", zap.Error(err))
	}
}

// Close records any unfinished session and closes the store.
func (v *Viewer) Close() {
	v.endSession()
	if v.store == nil {
		return
	}
	if err := v.store.Close(); err != nil {
		v.log.Warn("failed to close storage", zap.Error(err))
	}
	v.store = nil
}

// StatsLine summarizes lifetime play for the menu, or "" before the first
// recorded session.
func (v *Viewer) StatsLine() string {
	if v.stats == nil || v.stats.SessionsPlayed == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d   Avg moves: %.1f   Time: %s",
		v.stats.SessionsPlayed, v.stats.AverageMoves(), game.FormatClock(v.stats.TotalTime()))
}

// Mode returns the screen currently shown.
func (v *Viewer) Mode() Mode { return v.mode }

// Session returns the running session or nil.
func (v *Viewer) Session() *game.Session { return v.session }

// Menu returns the menu controller.
func (v *Viewer) Menu() *menu.Controller { return v.ctrl }

// SoundEnabled reports the sound preference.
func (v *Viewer) SoundEnabled() bool { return v.prefs.SoundEnabled }

// ShowCoordinates reports the board label preference.
func (v *Viewer) ShowCoordinates() bool { return v.prefs.ShowCoordinates }
