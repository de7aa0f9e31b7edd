package models

// Cell is one grid position. Row and Col never change after construction.
type Cell struct {
	Row           int
	Col           int
	Hazard        bool
	Adjacent      int // hazards among the up-to-8 neighbours
	Hidden        bool
	Flagged       bool
	TriggeredLoss bool // the hazard the player actually clicked
}

func newCell(row, col int, hazard bool) Cell {
	return Cell{
		Row:    row,
		Col:    col,
		Hazard: hazard,
		Hidden: true,
	}
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int
	Col int
}

// CellView is the read-only projection of a Cell handed to presentation code.
// HazardVisible is only set when the board is allowed to show the hazard, so a
// renderer can never leak the layout of a round in progress.
type CellView struct {
	Row           int
	Col           int
	Hidden        bool
	Flagged       bool
	HazardVisible bool
	Adjacent      int
	TriggeredLoss bool
}
