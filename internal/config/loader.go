package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "WUMPUS"

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"size":           "game.size",
	"arrows":         "game.arrows",
	"seed":           "game.seed",
	"monster-chance": "game.monster_move_chance",
	"monster-origin": "game.rules.monster_origin",
	"legacy-smell":   "game.rules.legacy_smell",
	"lethal":         "game.rules.lethal_hazards",
	"enforce-arrows": "game.rules.enforce_arrows",
	"ui":             "ui.mode",
	"ansi-clear":     "ui.ansi_clear",
	"log-level":      "log.level",
	"log-file":       "log.file",
	"log-stderr":     "log.stderr",
	"telemetry":      "telemetry.enabled",
}

// LoadDotEnv loads variables from the given .env files (default ".env").
// A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// NewFlagSet declares the command-line flags.
func NewFlagSet(name string) *pflag.FlagSet {
	d := Default()
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)

	flags.StringP("config", "c", "", "path to a config file (yaml, json or toml)")
	flags.IntP("size", "n", d.Game.Size, "side length of the cave")
	flags.IntP("arrows", "a", d.Game.Arrows, "arrows in the quiver")
	flags.Int64("seed", d.Game.Seed, "random seed, 0 picks one from the clock")
	flags.Float64("monster-chance", d.Game.MonsterMoveChance, "probability that the Wumpus moves each turn")
	flags.String("monster-origin", d.Game.Rules.MonsterOrigin, `where the Wumpus moves from: "monster" or "player" (classic)`)
	flags.Bool("legacy-smell", d.Game.Rules.LegacySmell, "use the classic smell check")
	flags.Bool("lethal", d.Game.Rules.LethalHazards, "pits and the Wumpus kill the player")
	flags.Bool("enforce-arrows", d.Game.Rules.EnforceArrows, "refuse to shoot with an empty quiver")
	flags.String("ui", d.UI.Mode, `frontend: "plain" or "tcell"`)
	flags.Bool("ansi-clear", d.UI.ANSIClear, "clear the screen between turns in plain mode")
	flags.String("log-level", d.Log.Level, "log level")
	flags.String("log-file", d.Log.File, "log file, empty disables logging")
	flags.Bool("log-stderr", d.Log.Stderr, "also log to stderr")
	flags.Bool("telemetry", d.Telemetry.Enabled, "export traces over OTLP")

	return flags
}

// Load parses args and merges defaults, the config file, the environment and
// flags, in increasing order of precedence.
func Load(args []string) (*Config, error) {
	flags := NewFlagSet("wumpus")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)))
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("game.size", d.Game.Size)
	v.SetDefault("game.arrows", d.Game.Arrows)
	v.SetDefault("game.seed", d.Game.Seed)
	v.SetDefault("game.monster_move_chance", d.Game.MonsterMoveChance)
	v.SetDefault("game.rules.monster_origin", d.Game.Rules.MonsterOrigin)
	v.SetDefault("game.rules.legacy_smell", d.Game.Rules.LegacySmell)
	v.SetDefault("game.rules.lethal_hazards", d.Game.Rules.LethalHazards)
	v.SetDefault("game.rules.enforce_arrows", d.Game.Rules.EnforceArrows)

	v.SetDefault("ui.mode", d.UI.Mode)
	v.SetDefault("ui.ansi_clear", d.UI.ANSIClear)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)
	v.SetDefault("log.stderr", d.Log.Stderr)
	v.SetDefault("log.dev", d.Log.Dev)

	v.SetDefault("telemetry.enabled", d.Telemetry.Enabled)
	v.SetDefault("telemetry.endpoint", d.Telemetry.Endpoint)
	v.SetDefault("telemetry.api_key", d.Telemetry.APIKey)
	v.SetDefault("telemetry.dataset", d.Telemetry.Dataset)
}
