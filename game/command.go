package game

type CommandType int

const (
	RevealCommand CommandType = iota
	FlagCommand
	ResetCommand
)

// Command is one discrete player action. Row and Col address the target cell;
// Level selects the difficulty preset for ResetCommand.
type Command struct {
	Type  CommandType
	Row   int
	Col   int
	Level int
}

func NewCommand(commandType CommandType, row, col int) Command {
	return Command{Type: commandType, Row: row, Col: col}
}

func NewResetCommand(level int) Command {
	return Command{Type: ResetCommand, Level: level}
}
