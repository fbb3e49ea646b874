// Package config loads game settings from defaults, an optional config file,
// WUMPUS_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/samdwyer/wumpus/internal/game"
	"github.com/samdwyer/wumpus/internal/world"
)

// UI modes.
const (
	UIPlain = "plain"
	UITcell = "tcell"
)

// Config is the complete application configuration.
type Config struct {
	Game      game.Config     `mapstructure:"game"`
	UI        UIConfig        `mapstructure:"ui"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// UIConfig selects the frontend.
type UIConfig struct {
	Mode      string `mapstructure:"mode"`       // "plain" or "tcell"
	ANSIClear bool   `mapstructure:"ansi_clear"` // plain mode: clear the screen on redraw
}

// LogConfig controls the zap logger. An empty File disables file output.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
	Stderr     bool   `mapstructure:"stderr"`
	Dev        bool   `mapstructure:"dev"`
}

// TelemetryConfig controls OpenTelemetry export.
type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
	Dataset  string `mapstructure:"dataset"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: game.DefaultConfig(),
		UI: UIConfig{
			Mode: UIPlain,
		},
		Log: LogConfig{
			Level:      "info",
			File:       "wumpus.log",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
		Telemetry: TelemetryConfig{
			Endpoint: "https://api.honeycomb.io",
			Dataset:  "wumpus",
		},
	}
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Game.Size < world.MinSize {
		errs = append(errs, fmt.Errorf("game.size must be at least %d, got %d", world.MinSize, c.Game.Size))
	}
	if c.Game.Arrows < 0 {
		errs = append(errs, fmt.Errorf("game.arrows must not be negative, got %d", c.Game.Arrows))
	}
	if math.IsNaN(c.Game.MonsterMoveChance) || c.Game.MonsterMoveChance < 0 || c.Game.MonsterMoveChance > 1 {
		errs = append(errs, fmt.Errorf("game.monster_move_chance must be within [0,1], got %g", c.Game.MonsterMoveChance))
	}
	switch c.Game.Rules.MonsterOrigin {
	case game.OriginMonster, game.OriginPlayer:
	default:
		errs = append(errs, fmt.Errorf("game.rules.monster_origin must be %q or %q, got %q",
			game.OriginMonster, game.OriginPlayer, c.Game.Rules.MonsterOrigin))
	}
	switch c.UI.Mode {
	case UIPlain, UITcell:
	default:
		errs = append(errs, fmt.Errorf("ui.mode must be %q or %q, got %q", UIPlain, UITcell, c.UI.Mode))
	}

	return errors.Join(errs...)
}
