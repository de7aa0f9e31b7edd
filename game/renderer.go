package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/dimaq12/minesweaper/models"
)

var digitColors = [...]tcell.Color{
	tcell.ColorWhite,
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorNavy,
	tcell.ColorMaroon,
	tcell.ColorTeal,
	tcell.ColorPurple,
	tcell.ColorGray,
}

type Renderer struct {
	boardTable *tview.Table
	status     *tview.TextView
	layout     *tview.Flex
}

func NewRenderer() *Renderer {
	r := &Renderer{
		boardTable: tview.NewTable(),
		status:     tview.NewTextView(),
	}
	r.boardTable.SetSelectable(true, true)
	r.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(r.status, 1, 0, false).
		AddItem(r.boardTable, 0, 1, true)
	return r
}

// Root is the primitive to hand to tview.Application.SetRoot.
func (r *Renderer) Root() tview.Primitive {
	return r.layout
}

// Table exposes the board table for input binding.
func (r *Renderer) Table() *tview.Table {
	return r.boardTable
}

// DrawBoard repaints every cell and the status line.
func (r *Renderer) DrawBoard(e Engine) {
	r.boardTable.Clear()
	e.EachCell(r.RenderCell)

	side := e.Difficulty().Side
	r.boardTable.SetFixed(side, side)
	r.RenderStatus(e)
}

// RenderCells repaints only the given cells.
func (r *Renderer) RenderCells(e Engine, cells []models.Coord) {
	for _, at := range cells {
		if v, err := e.Cell(at.Row, at.Col); err == nil {
			r.RenderCell(v)
		}
	}
	r.RenderStatus(e)
}

func (r *Renderer) RenderCell(v models.CellView) {
	text, color := cellText(v)
	r.boardTable.SetCell(v.Row, v.Col, tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(color))
}

func (r *Renderer) RenderStatus(e Engine) {
	var msg string
	switch e.Outcome() {
	case Won:
		msg = "Congratulations! You won the game! [r] new game  [q] quit"
	case Lost:
		msg = "Game Over! You hit a mine. [r] new game  [q] quit"
	default:
		msg = fmt.Sprintf("%s  mines left: %d  [enter] open  [f] flag  [1-%d] level", e.Difficulty(), e.HazardsRemaining(), models.MaxLevel)
	}
	r.status.SetText(msg)
}

// StatusText returns what the status line currently shows.
func (r *Renderer) StatusText() string {
	return r.status.GetText(true)
}

func cellText(v models.CellView) (string, tcell.Color) {
	switch {
	case v.TriggeredLoss:
		return "X", tcell.ColorRed
	case v.HazardVisible && v.Flagged:
		return "F", tcell.ColorGreen
	case v.HazardVisible:
		return "M", tcell.ColorRed
	case v.Flagged:
		return "F", tcell.ColorYellow
	case v.Hidden:
		return ".", tcell.ColorWhite
	case v.Adjacent == 0:
		return " ", tcell.ColorWhite
	default:
		return fmt.Sprintf("%d", v.Adjacent), digitColors[v.Adjacent]
	}
}
