package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dimaq12/minesweaper/config"
	"github.com/dimaq12/minesweaper/models"
)

var errQuit = errors.New("player quit")

// promptLevel asks for a level until it gets one in range, 'q', or runs out
// of input.
func promptLevel(in io.Reader, out io.Writer) (int, error) {
	var input string

	for {
		fmt.Fprintf(out, "Enter the level (%d-%d) or 'q' to quit: ", models.MinLevel, models.MaxLevel)
		if _, err := fmt.Fscan(in, &input); err != nil {
			if errors.Is(err, io.EOF) {
				return 0, errQuit
			}
			fmt.Fprintln(out, "Error reading input:", err)
			continue
		}

		if strings.ToLower(input) == "q" {
			return 0, errQuit
		}

		level, err := strconv.Atoi(input)
		if err == nil && level >= models.MinLevel && level <= models.MaxLevel {
			return level, nil
		}

		fmt.Fprintf(out, "Invalid input. Please enter a level between %d and %d or 'q' to quit.\n", models.MinLevel, models.MaxLevel)
	}
}

// resolveDifficulty takes the board from cfg, falling back to the prompt.
func resolveDifficulty(cfg *config.Config, in io.Reader, out io.Writer) (models.Difficulty, error) {
	if cfg.Interactive() {
		level, err := promptLevel(in, out)
		if err != nil {
			return models.Difficulty{}, err
		}
		fmt.Fprintln(out, "Level:", level)
		return models.LevelDifficulty(level), nil
	}
	return cfg.Difficulty()
}
