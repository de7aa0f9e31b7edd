package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelDifficulty(t *testing.T) {
	assert.Equal(t, Difficulty{Hazards: 10, Side: 9}, LevelDifficulty(1))
	assert.Equal(t, Difficulty{Hazards: 180, Side: 30}, LevelDifficulty(5))
	assert.Equal(t, LevelDifficulty(1), LevelDifficulty(0))
	assert.Equal(t, LevelDifficulty(1), LevelDifficulty(42))

	for level := MinLevel; level <= MaxLevel; level++ {
		assert.NoError(t, LevelDifficulty(level).Validate(), "level %d", level)
	}
}

func TestDifficultyCounts(t *testing.T) {
	d := Difficulty{Hazards: 10, Side: 9}
	assert.Equal(t, 81, d.Cells())
	assert.Equal(t, 71, d.SafeCells())
	assert.Equal(t, "9x9/10", d.String())
}

func TestDifficultyValidate(t *testing.T) {
	tests := []struct {
		name string
		d    Difficulty
		ok   bool
	}{
		{"single safe cell", Difficulty{Hazards: 0, Side: 1}, true},
		{"dense", Difficulty{Hazards: 80, Side: 9}, true},
		{"full", Difficulty{Hazards: 81, Side: 9}, false},
		{"negative hazards", Difficulty{Hazards: -3, Side: 9}, false},
		{"empty board", Difficulty{Hazards: 0, Side: 0}, false},
		{"negative side", Difficulty{Hazards: 0, Side: -2}, false},
		{"largest side", Difficulty{Hazards: 10, Side: MaxSide}, true},
		{"side too large", Difficulty{Hazards: 10, Side: MaxSide + 1}, false},
		{"side overflows cell count", Difficulty{Hazards: 10, Side: 1<<31 - 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidDifficulty)
			}
		})
	}
}
