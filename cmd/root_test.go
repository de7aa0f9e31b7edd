package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaq12/minesweaper/models"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootQuitsFromPrompt(t *testing.T) {
	out, err := execute(t, "q\n", "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter the level")
	assert.Contains(t, out, "Quitting...")
}

func TestRootRejectsBadLogLevel(t *testing.T) {
	_, err := execute(t, "q\n", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestRootRejectsUnknownLevel(t *testing.T) {
	_, err := execute(t, "", "--level", "9")
	assert.ErrorIs(t, err, models.ErrInvalidDifficulty)
}

func TestRootCommandsDoNotShareFlags(t *testing.T) {
	_, err := execute(t, "", "--side", "3", "--hazards", "9")
	require.ErrorIs(t, err, models.ErrInvalidDifficulty)

	out, err := execute(t, "q\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter the level", "a fresh command starts from defaults")
}

func TestRootReadsTOMLConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweeper.toml")
	require.NoError(t, os.WriteFile(path, []byte("side = 2\nhazards = 4\n"), 0o644))

	_, err := execute(t, "", "--config", path)
	assert.ErrorIs(t, err, models.ErrInvalidDifficulty)
}
