package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweaper/models"
)

// Outcome is the state of a round.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Engine is what the input and presentation layers need from a game.
type Engine interface {
	Reveal(row, col int) error
	ToggleFlag(row, col int) error
	Reset(d models.Difficulty) error
	Outcome() Outcome
	Difficulty() models.Difficulty
	HazardsRemaining() int
	Cell(row, col int) (models.CellView, error)
	EachCell(fn func(models.CellView))
	Changed() []models.Coord
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for hazard placement.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rand = r
	}
}

// WithSeed seeds hazard placement for reproducible games. Zero keeps the
// time-based default.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		if seed != 0 {
			s.rand = rand.New(rand.NewSource(seed))
		}
	}
}

// WithLogger sets the logger. Sessions are silent by default.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// Session owns one board at a time and layers the round rules on top of it:
// first-click safety, win/loss tracking and resets.
type Session struct {
	id              uuid.UUID
	board           *models.Board
	difficulty      models.Difficulty
	firstClickTaken bool
	outcome         Outcome
	changed         []models.Coord

	rand *rand.Rand
	log  logrus.FieldLogger
}

var _ Engine = (*Session)(nil)

// NewSession starts a round with the given difficulty.
func NewSession(d models.Difficulty, opts ...Option) (*Session, error) {
	s := &Session{id: uuid.New()}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.log == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		s.log = silent
	}

	if err := s.Reset(d); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset throws the current board away and starts a fresh round. On error the
// current round is left untouched.
func (s *Session) Reset(d models.Difficulty) error {
	board, err := models.NewBoard(d, s.rand)
	if err != nil {
		return err
	}

	s.board = board
	s.difficulty = d
	s.firstClickTaken = false
	s.outcome = InProgress
	s.changed = nil

	s.log.WithFields(logrus.Fields{
		"session": s.id,
		"side":    d.Side,
		"hazards": d.Hazards,
	}).Info("new round")
	return nil
}

// Reveal opens the cell at (row, col). The first reveal of a round never hits
// a hazard. Once the round is over, reveals are ignored until Reset.
func (s *Session) Reveal(row, col int) error {
	cell, err := s.board.Cell(row, col)
	if err != nil {
		return err
	}
	s.changed = nil
	if s.outcome != InProgress {
		return nil
	}

	if !s.firstClickTaken && cell.Hazard && !cell.Flagged {
		if err := s.redrawUntilSafe(row, col); err != nil {
			return err
		}
	}

	out, err := s.board.Reveal(row, col)
	if err != nil {
		return err
	}
	if out.Kind == models.RevealNone {
		return nil
	}

	s.firstClickTaken = true
	s.changed = out.Cells
	s.evaluate()
	return nil
}

// redrawUntilSafe replaces the board with fresh draws of the same difficulty
// until (row, col) is safe. Flags already placed carry over.
func (s *Session) redrawUntilSafe(row, col int) error {
	var flagged []models.Coord
	s.board.EachView(false, func(v models.CellView) {
		if v.Flagged {
			flagged = append(flagged, models.Coord{Row: v.Row, Col: v.Col})
		}
	})

	for attempts := 1; ; attempts++ {
		board, err := models.NewBoard(s.difficulty, s.rand)
		if err != nil {
			return err
		}
		if cell, _ := board.Cell(row, col); cell.Hazard {
			continue
		}

		for _, at := range flagged {
			if err := board.ToggleFlag(at.Row, at.Col); err != nil {
				return err
			}
		}
		s.board = board

		s.log.WithFields(logrus.Fields{
			"session":  s.id,
			"row":      row,
			"col":      col,
			"attempts": attempts,
		}).Debug("first click hit a hazard, board redrawn")
		return nil
	}
}

func (s *Session) evaluate() {
	prev := s.outcome
	switch {
	case s.board.HazardExposed():
		s.outcome = Lost
	case s.board.RevealedSafe() == s.difficulty.SafeCells():
		s.outcome = Won
	}

	if s.outcome != prev {
		s.log.WithFields(logrus.Fields{
			"session":  s.id,
			"outcome":  s.outcome.String(),
			"revealed": s.board.RevealedSafe(),
		}).Info("round finished")
	}
}

// ToggleFlag flips the flag on a hidden cell. Ignored once the round is over.
func (s *Session) ToggleFlag(row, col int) error {
	if _, err := s.board.Cell(row, col); err != nil {
		return err
	}
	s.changed = nil
	if s.outcome != InProgress {
		return nil
	}

	if err := s.board.ToggleFlag(row, col); err != nil {
		return err
	}
	s.changed = []models.Coord{{Row: row, Col: col}}
	return nil
}

// Outcome returns the state of the current round.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Difficulty returns the difficulty of the current board.
func (s *Session) Difficulty() models.Difficulty {
	return s.difficulty
}

// FirstClickTaken reports whether a reveal has already changed the board.
func (s *Session) FirstClickTaken() bool {
	return s.firstClickTaken
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id.String()
}

// HazardsRemaining is the hazard count minus the flags placed. It goes
// negative when the player over-flags.
func (s *Session) HazardsRemaining() int {
	return s.difficulty.Hazards - s.board.FlagCount()
}

// Changed lists the cells touched by the last Reveal or ToggleFlag.
func (s *Session) Changed() []models.Coord {
	return s.changed
}

// Cell returns the player-visible view of (row, col).
func (s *Session) Cell(row, col int) (models.CellView, error) {
	return s.board.View(row, col, s.outcome != InProgress)
}

// EachCell calls fn with the player-visible view of every cell, row by row.
func (s *Session) EachCell(fn func(models.CellView)) {
	s.board.EachView(s.outcome != InProgress, fn)
}
