package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/dimaq12/minesweaper/models"
)

// EnvPrefix prefixes every environment override, e.g. SWEEPER_LEVEL=3.
const EnvPrefix = "SWEEPER"

type Config struct {
	// Level picks a preset. Zero means ask the player.
	Level int `mapstructure:"level"`
	// Hazards and Side describe a custom board and win over Level when Side is set.
	Hazards  int    `mapstructure:"hazards"`
	Side     int    `mapstructure:"side"`
	Seed     int64  `mapstructure:"seed"` // 0 = random
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"` // empty discards logs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("level", 0)
	v.SetDefault("hazards", 0)
	v.SetDefault("side", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
}

// Load reads configuration from defaults, the optional file at path and
// SWEEPER_* environment variables, in increasing priority. Flags bound to v
// beforehand take precedence over all of them. The file format follows the
// extension; files without one are read as YAML.
func Load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Interactive reports whether neither a level nor a custom board was given.
func (c *Config) Interactive() bool {
	return c.Level == 0 && c.Side == 0
}

// Difficulty resolves the configured board.
func (c *Config) Difficulty() (models.Difficulty, error) {
	if c.Side != 0 {
		d := models.Difficulty{Hazards: c.Hazards, Side: c.Side}
		return d, d.Validate()
	}
	if c.Level < models.MinLevel || c.Level > models.MaxLevel {
		return models.Difficulty{}, fmt.Errorf("%w: level must be between %d and %d, got %d",
			models.ErrInvalidDifficulty, models.MinLevel, models.MaxLevel, c.Level)
	}
	return models.LevelDifficulty(c.Level), nil
}
