package models

import "errors"

var (
	// ErrInvalidDifficulty is returned when a difficulty cannot describe a playable board.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)
