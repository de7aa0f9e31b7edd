package models

import (
	"fmt"
	"math/rand"
	"strings"
)

// RevealKind tells which branch a Reveal call took.
type RevealKind int

const (
	// RevealNone means nothing changed: the cell was already revealed or flagged.
	RevealNone RevealKind = iota
	// RevealSafe means a safe cascade ran.
	RevealSafe
	// RevealHazard means the player hit a hazard and every hazard was exposed.
	RevealHazard
)

// RevealOutcome reports the result of a reveal together with every cell whose
// hidden state changed, in the order they were revealed.
type RevealOutcome struct {
	Kind  RevealKind
	Cells []Coord
}

// Board is a square grid of cells built from a Difficulty. Its shape never
// changes; only reveal and flag state mutates.
type Board struct {
	cells      [][]Cell
	difficulty Difficulty

	// revealedSafe and hazardExposed are kept in step with the cells by the
	// reveal engine so outcome checks do not rescan the grid.
	revealedSafe  int
	hazardExposed bool
	flags         int
}

// NewBoard builds a board with exactly d.Hazards hazards placed uniformly at
// random and adjacency counts already computed.
func NewBoard(d Difficulty, r *rand.Rand) (*Board, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	// Step 1: one marker per cell, the first Hazards of them set.
	markers := make([]bool, d.Cells())
	for i := 0; i < d.Hazards; i++ {
		markers[i] = true
	}

	// Step 2: Fisher-Yates shuffle so every layout is equally likely.
	r.Shuffle(len(markers), func(i, j int) {
		markers[i], markers[j] = markers[j], markers[i]
	})

	// Step 3: marker row*Side+col belongs to cell (row, col).
	b := newEmptyBoard(d)
	for row := 0; row < d.Side; row++ {
		for col := 0; col < d.Side; col++ {
			b.cells[row][col] = newCell(row, col, markers[row*d.Side+col])
		}
	}
	b.ComputeAdjacencyCounts()

	return b, nil
}

// NewBoardFromLayout builds a board from a fixed, square hazard layout where
// layout[row][col] marks a hazard.
func NewBoardFromLayout(layout [][]bool) (*Board, error) {
	side := len(layout)
	hazards := 0
	for row, line := range layout {
		if len(line) != side {
			return nil, fmt.Errorf("%w: layout row %d has %d cells, want %d", ErrInvalidDifficulty, row, len(line), side)
		}
		for _, hazard := range line {
			if hazard {
				hazards++
			}
		}
	}

	d := Difficulty{Hazards: hazards, Side: side}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	b := newEmptyBoard(d)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			b.cells[row][col] = newCell(row, col, layout[row][col])
		}
	}
	b.ComputeAdjacencyCounts()

	return b, nil
}

func newEmptyBoard(d Difficulty) *Board {
	cells := make([][]Cell, d.Side)
	for i := range cells {
		cells[i] = make([]Cell, d.Side)
	}
	return &Board{cells: cells, difficulty: d}
}

// Difficulty returns the parameters the board was built from.
func (b *Board) Difficulty() Difficulty {
	return b.difficulty
}

// Side returns the number of rows (and columns).
func (b *Board) Side() int {
	return b.difficulty.Side
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.difficulty.Side && col >= 0 && col < b.difficulty.Side
}

func (b *Board) checkBounds(row, col int) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfBounds, row, col, b.difficulty.Side, b.difficulty.Side)
	}
	return nil
}

// Cell returns a copy of the cell at (row, col).
func (b *Board) Cell(row, col int) (Cell, error) {
	if err := b.checkBounds(row, col); err != nil {
		return Cell{}, err
	}
	return b.cells[row][col], nil
}

// RevealedSafe is the number of non-hazard cells revealed so far.
func (b *Board) RevealedSafe() int {
	return b.revealedSafe
}

// HazardExposed reports whether any hazard has been revealed.
func (b *Board) HazardExposed() bool {
	return b.hazardExposed
}

// FlagCount is the number of hidden cells currently flagged.
func (b *Board) FlagCount() int {
	return b.flags
}

// neighbours calls fn for each in-bounds Moore neighbour of (row, col).
func (b *Board) neighbours(row, col int, fn func(row, col int)) {
	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		for deltaCol := -1; deltaCol <= 1; deltaCol++ {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			newRow, newCol := row+deltaRow, col+deltaCol
			if b.InBounds(newRow, newCol) {
				fn(newRow, newCol)
			}
		}
	}
}

// ComputeAdjacencyCounts sets Adjacent on every cell from the current hazard
// layout. It is a pure function of the layout and safe to call repeatedly.
func (b *Board) ComputeAdjacencyCounts() {
	for row := range b.cells {
		for col := range b.cells[row] {
			count := 0
			b.neighbours(row, col, func(r, c int) {
				if b.cells[r][c].Hazard {
					count++
				}
			})
			b.cells[row][col].Adjacent = count
		}
	}
}

// Reveal opens the cell at (row, col). A safe cell starts a cascade, a hazard
// exposes every hazard on the board. Revealed and flagged cells are left alone.
func (b *Board) Reveal(row, col int) (RevealOutcome, error) {
	if err := b.checkBounds(row, col); err != nil {
		return RevealOutcome{}, err
	}

	cell := &b.cells[row][col]
	if !cell.Hidden || cell.Flagged {
		return RevealOutcome{Kind: RevealNone}, nil
	}

	if cell.Hazard {
		return RevealOutcome{Kind: RevealHazard, Cells: b.revealAllHazards(Coord{Row: row, Col: col})}, nil
	}
	return RevealOutcome{Kind: RevealSafe, Cells: b.cascadeReveal(Coord{Row: row, Col: col})}, nil
}

// cascadeReveal runs a breadth-first fill from start, which must be a hidden,
// unflagged, safe cell. Zero-count cells keep the fill going, numbered cells
// are revealed as its border, and flagged or hazard cells are never touched.
func (b *Board) cascadeReveal(start Coord) []Coord {
	revealed := []Coord{start}
	b.open(start)

	if b.cells[start.Row][start.Col].Adjacent != 0 {
		return revealed
	}

	// Cells are opened when queued, so Hidden doubles as the visited set and
	// each cell enters the queue at most once.
	queue := []Coord{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		b.neighbours(current.Row, current.Col, func(row, col int) {
			next := &b.cells[row][col]
			if !next.Hidden || next.Flagged || next.Hazard {
				return
			}

			at := Coord{Row: row, Col: col}
			b.open(at)
			revealed = append(revealed, at)

			if next.Adjacent == 0 {
				queue = append(queue, at)
			}
		})
	}

	return revealed
}

// revealAllHazards marks trigger as the losing click and exposes every hazard.
// Safe cells keep their state.
func (b *Board) revealAllHazards(trigger Coord) []Coord {
	b.cells[trigger.Row][trigger.Col].TriggeredLoss = true

	revealed := []Coord{trigger}
	b.open(trigger)

	for row := range b.cells {
		for col := range b.cells[row] {
			cell := &b.cells[row][col]
			if !cell.Hazard || !cell.Hidden {
				continue
			}
			at := Coord{Row: row, Col: col}
			b.open(at)
			revealed = append(revealed, at)
		}
	}

	return revealed
}

// open reveals a single cell and keeps the board counters current.
func (b *Board) open(at Coord) {
	cell := &b.cells[at.Row][at.Col]
	if !cell.Hidden {
		return
	}
	cell.Hidden = false
	if cell.Flagged {
		cell.Flagged = false
		b.flags--
	}
	if cell.Hazard {
		b.hazardExposed = true
	} else {
		b.revealedSafe++
	}
}

// ToggleFlag flips the flag on a hidden cell. Revealed cells are ignored.
func (b *Board) ToggleFlag(row, col int) error {
	if err := b.checkBounds(row, col); err != nil {
		return err
	}

	cell := &b.cells[row][col]
	if !cell.Hidden {
		return nil
	}

	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		b.flags++
	} else {
		b.flags--
	}
	return nil
}

// View projects the cell at (row, col) for display. Hazards are only visible
// once revealed, or everywhere when exposeHazards is set at the end of a round.
func (b *Board) View(row, col int, exposeHazards bool) (CellView, error) {
	if err := b.checkBounds(row, col); err != nil {
		return CellView{}, err
	}
	return b.view(b.cells[row][col], exposeHazards), nil
}

func (b *Board) view(cell Cell, exposeHazards bool) CellView {
	v := CellView{
		Row:           cell.Row,
		Col:           cell.Col,
		Hidden:        cell.Hidden,
		Flagged:       cell.Flagged,
		TriggeredLoss: cell.TriggeredLoss,
	}
	if !cell.Hidden {
		v.Adjacent = cell.Adjacent
	}
	if cell.Hazard && (!cell.Hidden || exposeHazards) {
		v.HazardVisible = true
	}
	return v
}

// EachView calls fn for every cell in row-major order.
func (b *Board) EachView(exposeHazards bool, fn func(CellView)) {
	for row := range b.cells {
		for col := range b.cells[row] {
			fn(b.view(b.cells[row][col], exposeHazards))
		}
	}
}

// String dumps the full layout, hazards included: '*' for a hazard, the
// adjacency count otherwise. Meant for debugging and logs, not for players.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.cells {
		for col, cell := range b.cells[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if cell.Hazard {
				sb.WriteByte('*')
			} else {
				fmt.Fprintf(&sb, "%d", cell.Adjacent)
			}
		}
		if row < len(b.cells)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
