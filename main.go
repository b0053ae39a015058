// ChessView - a two-player chess board viewer built with Ebitengine
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/config"
	"github.com/hailam/chessview/internal/obslog"
	"github.com/hailam/chessview/internal/storage"
	"github.com/hailam/chessview/internal/ui"
	"github.com/hailam/chessview/internal/viewer"
)

var (
	configPath = flag.String("config", "", "path to config.yaml (default: XDG config search)")
	startFEN   = flag.String("fen", "", "start every game from this FEN instead of the standard position")
	saveConfig = flag.Bool("write-config", false, "write the effective configuration to the XDG config dir and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessview: %v\n", err)
		os.Exit(1)
	}

	logger, err := obslog.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessview: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *saveConfig {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("cannot write config", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", path))
		return
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("startup failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	opts := []viewer.Option{viewer.WithLogger(logger)}

	if *startFEN != "" {
		if _, err := board.NewBoardFromFEN(*startFEN); err != nil {
			return fmt.Errorf("start position: %w", err)
		}
		opts = append(opts, viewer.WithStartPosition(*startFEN))
	}

	fonts, err := ui.LoadFonts()
	if err != nil {
		return err
	}
	geom := board.NewGeometry(cfg.Window.Width)
	renderer, err := ui.NewRenderer(geom, ui.ThemeFromConfig(cfg.Theme), fonts)
	if err != nil {
		return fmt.Errorf("load piece sprites: %w", err)
	}

	if store := openStorage(cfg.Storage, logger); store != nil {
		opts = append(opts, viewer.WithStorage(store))
	}
	v := viewer.New(cfg.Window.Width, cfg.Window.Height, opts...)
	app := ui.NewApp(cfg.Window.Width, cfg.Window.Height, v, renderer, fonts)
	defer app.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.FrameRate)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("starting",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("fps", cfg.Window.FrameRate),
	)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// openStorage returns nil when persistence is disabled or unavailable.
func openStorage(sc config.StorageConfig, logger *zap.Logger) *storage.Storage {
	if !sc.Enabled {
		return nil
	}
	var (
		store *storage.Storage
		err   error
	)
	if sc.Dir == "" {
		store, err = storage.NewStorage(logger)
	} else {
		store, err = storage.Open(sc.Dir, logger)
	}
	if err != nil {
		logger.Warn("running without storage", zap.Error(err))
		return nil
	}
	return store
}
