package models

import "fmt"

// Difficulty describes a Side x Side board holding exactly Hazards hazards.
type Difficulty struct {
	Hazards int
	Side    int
}

// Levels are the built-in presets, indexed by level number.
var Levels = map[int]Difficulty{
	1: {Hazards: 10, Side: 9},
	2: {Hazards: 40, Side: 15},
	3: {Hazards: 80, Side: 20},
	4: {Hazards: 125, Side: 25},
	5: {Hazards: 180, Side: 30},
}

const (
	MinLevel = 1
	MaxLevel = 5

	// MaxSide caps the board at about a million cells.
	MaxSide = 1 << 10
)

// LevelDifficulty returns the preset for level, defaulting to level 1 for
// anything outside MinLevel..MaxLevel.
func LevelDifficulty(level int) Difficulty {
	if d, ok := Levels[level]; ok {
		return d
	}
	return Levels[MinLevel]
}

// Cells is the total number of cells on the board.
func (d Difficulty) Cells() int {
	return d.Side * d.Side
}

// SafeCells is the number of cells a player has to reveal to win.
func (d Difficulty) SafeCells() int {
	return d.Cells() - d.Hazards
}

// Validate checks that the side is in 1..MaxSide, the hazard count is not
// negative and at least one cell is safe.
func (d Difficulty) Validate() error {
	if d.Side < 1 {
		return fmt.Errorf("%w: side length must be positive, got %d", ErrInvalidDifficulty, d.Side)
	}
	if d.Side > MaxSide {
		return fmt.Errorf("%w: side length must be at most %d, got %d", ErrInvalidDifficulty, MaxSide, d.Side)
	}
	if d.Hazards < 0 {
		return fmt.Errorf("%w: hazard count must not be negative, got %d", ErrInvalidDifficulty, d.Hazards)
	}
	if d.Hazards >= d.Cells() {
		return fmt.Errorf("%w: %d hazards do not fit on a %dx%d board", ErrInvalidDifficulty, d.Hazards, d.Side, d.Side)
	}
	return nil
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%dx%d/%d", d.Side, d.Side, d.Hazards)
}
