package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaq12/minesweaper/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Zero(t, cfg.Seed)
	assert.True(t, cfg.Interactive())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: 3\nseed: 42\nlog_level: debug\n"), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Level)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Interactive())

	d, err := cfg.Difficulty()
	require.NoError(t, err)
	assert.Equal(t, models.LevelDifficulty(3), d)
}

func TestLoadFormatFollowsExtension(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"sweeper.toml", "level = 4\nseed = 7\n"},
		{"sweeper.json", `{"level": 4, "seed": 7}`},
		{"sweeperrc", "level: 4\nseed: 7\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.name)
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0o644))

			cfg, err := Load(viper.New(), path)
			require.NoError(t, err)
			assert.Equal(t, 4, cfg.Level)
			assert.Equal(t, int64(7), cfg.Seed)
		})
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: 3\n"), 0o644))
	t.Setenv("SWEEPER_LEVEL", "5")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDifficulty(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want models.Difficulty
		err  bool
	}{
		{"preset", Config{Level: 2}, models.LevelDifficulty(2), false},
		{"custom wins over level", Config{Level: 2, Side: 6, Hazards: 7}, models.Difficulty{Hazards: 7, Side: 6}, false},
		{"custom too dense", Config{Side: 3, Hazards: 9}, models.Difficulty{Hazards: 9, Side: 3}, true},
		{"unknown level", Config{Level: 9}, models.Difficulty{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.cfg.Difficulty()
			if tt.err {
				assert.ErrorIs(t, err, models.ErrInvalidDifficulty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}
