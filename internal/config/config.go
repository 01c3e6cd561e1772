package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/llehouerou/drawer/internal/drawer"
)

const appName = "drawer"

// ErrInvalidHapticsMode is returned for an unknown [haptics] mode.
var ErrInvalidHapticsMode = errors.New("haptics mode must be click, bell or off")

type Config struct {
	Drawer  DrawerConfig  `koanf:"drawer"`
	Haptics HapticsConfig `koanf:"haptics"`
}

// DrawerConfig holds the bottom sheet settings.
type DrawerConfig struct {
	InitialState   string           `koanf:"initial_state"`   // "half" or "full" (default: "half")
	EnableGestures *bool            `koanf:"enable_gestures"` // drag and tap-outside (default: true)
	EnableHaptics  *bool            `koanf:"enable_haptics"`  // pulse on state change (default: true)
	CellHeight     float64          `koanf:"cell_height"`     // pixels per terminal row (default: 16)
	SnapPoints     SnapPointsConfig `koanf:"snap_points"`
}

// SnapPointsConfig holds the viewport fractions revealed by each open state.
// Leaving out half makes the sheet two-state.
type SnapPointsConfig struct {
	Half *float64 `koanf:"half"`
	Full float64  `koanf:"full"`
}

// HapticsConfig selects how a pulse is produced.
type HapticsConfig struct {
	Mode       string  `koanf:"mode"`        // "click", "bell" or "off" (default: "click")
	Frequency  float64 `koanf:"frequency"`   // click tone in Hz (default: 880)
	DurationMs int     `koanf:"duration_ms"` // click length (default: 30)
}

// Load reads the config files in priority order (last wins). An explicit path,
// when given, must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "load %s", path)
			}
		}
	}

	if explicit != "" {
		path := expandPath(explicit)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load %s", path)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	cfg.Drawer.InitialState = strings.ToLower(strings.TrimSpace(cfg.Drawer.InitialState))
	cfg.Haptics.Mode = strings.ToLower(strings.TrimSpace(cfg.Haptics.Mode))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/drawer/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DrawerOptions returns the sheet options with defaults applied. The pulser
// is left for the caller to wire.
func (c *Config) DrawerOptions() (drawer.Options, error) {
	d := c.Drawer

	initial := drawer.Half
	if d.InitialState != "" {
		s, ok := drawer.ParseState(d.InitialState)
		if !ok || s == drawer.Hidden {
			return drawer.Options{}, errors.Wrapf(drawer.ErrInvalidInitialState, "got %q", d.InitialState)
		}
		initial = s
	}

	points := drawer.SnapPoints{Half: d.SnapPoints.Half, Full: d.SnapPoints.Full}
	if points.Full == 0 {
		points.Full = 0.9
		if points.Half == nil {
			points.Half = drawer.Fraction(0.5)
		}
	}
	if err := points.Validate(); err != nil {
		return drawer.Options{}, err
	}

	cellHeight := d.CellHeight
	if cellHeight <= 0 {
		cellHeight = drawer.DefaultCellHeight
	}

	return drawer.Options{
		InitialState:   initial,
		SnapPoints:     points,
		EnableGestures: boolOr(d.EnableGestures, true),
		EnableHaptics:  boolOr(d.EnableHaptics, true),
		CellHeight:     cellHeight,
	}, nil
}

// GetHapticsConfig returns the haptics configuration with defaults applied.
func (c *Config) GetHapticsConfig() (HapticsConfig, error) {
	cfg := c.Haptics

	switch cfg.Mode {
	case "":
		cfg.Mode = "click"
	case "click", "bell", "off":
	default:
		return HapticsConfig{}, errors.Wrapf(ErrInvalidHapticsMode, "got %q", cfg.Mode)
	}
	if cfg.Frequency <= 0 {
		cfg.Frequency = 880
	}
	if cfg.DurationMs <= 0 {
		cfg.DurationMs = 30
	}
	return cfg, nil
}

// ClickDuration returns the click length as a duration.
func (h HapticsConfig) ClickDuration() time.Duration {
	return time.Duration(h.DurationMs) * time.Millisecond
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
