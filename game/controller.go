package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweaper/models"
)

// GameController turns player input into Commands against an Engine and keeps
// the Renderer in step with the result.
type GameController struct {
	engine   Engine
	renderer *Renderer
	log      logrus.FieldLogger
}

func NewGameController(engine Engine, renderer *Renderer, log logrus.FieldLogger) *GameController {
	return &GameController{engine: engine, renderer: renderer, log: log}
}

// StartGame paints the initial board.
func (c *GameController) StartGame() {
	c.renderer.DrawBoard(c.engine)
}

// Dispatch applies cmd and repaints whatever it changed.
func (c *GameController) Dispatch(cmd Command) error {
	switch cmd.Type {
	case RevealCommand:
		before := c.engine.Outcome()
		if err := c.engine.Reveal(cmd.Row, cmd.Col); err != nil {
			return err
		}
		if c.engine.Outcome() != before {
			// End of round exposes cells the reveal itself did not touch.
			c.renderer.DrawBoard(c.engine)
			return nil
		}
		c.renderer.RenderCells(c.engine, c.engine.Changed())

	case FlagCommand:
		if err := c.engine.ToggleFlag(cmd.Row, cmd.Col); err != nil {
			return err
		}
		c.renderer.RenderCells(c.engine, c.engine.Changed())

	case ResetCommand:
		d := c.engine.Difficulty()
		if cmd.Level != 0 {
			d = models.LevelDifficulty(cmd.Level)
		}
		if err := c.engine.Reset(d); err != nil {
			return err
		}
		c.renderer.DrawBoard(c.engine)

	default:
		return fmt.Errorf("unknown command type %d", cmd.Type)
	}
	return nil
}

func (c *GameController) handle(cmd Command) {
	if err := c.Dispatch(cmd); err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"command": cmd.Type,
			"row":     cmd.Row,
			"col":     cmd.Col,
		}).Warn("command rejected")
	}
}

// keyCommand maps a key press on the selected cell to a Command.
func keyCommand(event *tcell.EventKey, row, col int) (Command, bool) {
	switch event.Key() {
	case tcell.KeyEnter:
		return NewCommand(RevealCommand, row, col), true
	case tcell.KeyRune:
		switch r := event.Rune(); {
		case r == 'f' || r == 'F':
			return NewCommand(FlagCommand, row, col), true
		case r == 'r' || r == 'R':
			return NewResetCommand(0), true
		case r >= '0'+models.MinLevel && r <= '0'+models.MaxLevel:
			return NewResetCommand(int(r - '0')), true
		}
	}
	return Command{}, false
}

// Bind installs keyboard and mouse handlers on the board table. Enter or a
// left click reveals, 'f' or a right click flags, 'r' restarts, 1-5 switch
// level and 'q' stops app.
func (c *GameController) Bind(app *tview.Application) {
	table := c.renderer.Table()

	table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && (event.Rune() == 'q' || event.Rune() == 'Q') {
			c.TerminateGame(app)
			return nil
		}

		row, col := table.GetSelection()
		cmd, ok := keyCommand(event, row, col)
		if !ok {
			return event
		}
		c.handle(cmd)
		return nil
	})

	table.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		var commandType CommandType
		switch action {
		case tview.MouseLeftClick:
			commandType = RevealCommand
		case tview.MouseRightClick:
			commandType = FlagCommand
		default:
			return action, event
		}

		row, col := table.CellAt(event.Position())
		if row < 0 || col < 0 {
			return action, event
		}
		table.Select(row, col)
		c.handle(NewCommand(commandType, row, col))
		return tview.MouseConsumed, nil
	})
}

func (c *GameController) TerminateGame(app *tview.Application) {
	c.log.WithField("outcome", c.engine.Outcome().String()).Info("terminating the game")
	app.Stop()
}
