// Package config loads the viewer configuration from an optional YAML file
// with environment overrides.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName names the config and data directories.
const AppName = "chessview"

var cfgFile = AppName + "/config.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// WindowConfig sizes the window. The board fills the whole window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	FrameRate int    `yaml:"frame_rate"`
}

// ThemeConfig holds board colors as #RRGGBB or #RRGGBBAA.
type ThemeConfig struct {
	LightSquare string `yaml:"light_square"`
	DarkSquare  string `yaml:"dark_square"`
	Selected    string `yaml:"selected"`
	Target      string `yaml:"target"`
	Background  string `yaml:"background"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// StorageConfig controls the preferences and stats store.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Config is the complete viewer configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Theme   ThemeConfig   `yaml:"theme"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    800,
			Title:     "Chess Game",
			FrameRate: 60,
		},
		Theme: ThemeConfig{
			LightSquare: "#FFFFFF",
			DarkSquare:  "#000000",
			Selected:    "#0000FF",
			Target:      "#808080",
			Background:  "#000000",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Storage: StorageConfig{
			Enabled: true,
		},
	}
}

// Load reads path, or the first chessview/config.yaml on the XDG config
// search path when path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if found, err := xdg.SearchConfigFile(cfgFile); err == nil {
			path = found
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to the user's XDG config directory and returns the path.
func (c *Config) Save() (string, error) {
	path, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("locate config file: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write config %s: %w", path, err)
	}
	return path, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("CHESSVIEW_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSVIEW_LOG_FORMAT")); v != "" {
		c.Log.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSVIEW_FPS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Window.FrameRate = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("CHESSVIEW_STORAGE")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Storage.Enabled = b
		}
	}
}

// Validate checks that the configuration can drive a window.
func (c *Config) Validate() error {
	w := c.Window
	if w.Width < 64 || w.Height < 64 {
		return fmt.Errorf("%w: window %dx%d is smaller than 64x64", ErrInvalid, w.Width, w.Height)
	}
	if w.Width != w.Height {
		return fmt.Errorf("%w: window must be square, got %dx%d", ErrInvalid, w.Width, w.Height)
	}
	if w.Width%8 != 0 {
		return fmt.Errorf("%w: window size %d is not a multiple of 8", ErrInvalid, w.Width)
	}
	if w.FrameRate <= 0 || w.FrameRate > 240 {
		return fmt.Errorf("%w: frame_rate %d out of range 1-240", ErrInvalid, w.FrameRate)
	}
	for name, v := range map[string]string{
		"light_square": c.Theme.LightSquare,
		"dark_square":  c.Theme.DarkSquare,
		"selected":     c.Theme.Selected,
		"target":       c.Theme.Target,
		"background":   c.Theme.Background,
	} {
		if _, err := ParseColor(v); err != nil {
			return fmt.Errorf("%w: theme.%s: %v", ErrInvalid, name, err)
		}
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want console or json)", ErrInvalid, c.Log.Format)
	}
	return nil
}

// ParseColor parses #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	if len(s) == 6 {
		s += "FF"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustColor parses a color that Validate has already accepted.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
