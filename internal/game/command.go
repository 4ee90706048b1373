// Package game runs a console chess session: it parses commands, applies
// them to the board and reports through an output.View.
package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/console-chess/internal/chess"
	"github.com/lgbarn/console-chess/internal/errors"
)

// CommandType identifies a console command.
type CommandType int

const (
	StartCommand CommandType = iota
	EndCommand
	MoveCommand
	StatusCommand
	FENCommand
)

// String returns the command keyword.
func (c CommandType) String() string {
	names := []string{"start", "end", "move", "status", "fen"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

var keywords = map[string]CommandType{
	"start":  StartCommand,
	"end":    EndCommand,
	"move":   MoveCommand,
	"status": StatusCommand,
	"fen":    FENCommand,
}

// Command is a parsed console line. Src and Dest are set for MoveCommand only.
type Command struct {
	Type CommandType
	Src  chess.Square
	Dest chess.Square
}

// ParseCommand parses a line such as "move b2 b3". Keywords are case-insensitive.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty line: %w", errors.ErrInvalidCommand)
	}

	cmdType, ok := keywords[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("unknown command %q: %w", fields[0], errors.ErrInvalidCommand)
	}

	if cmdType != MoveCommand {
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%s takes no arguments: %w", cmdType, errors.ErrInvalidCommand)
		}
		return Command{Type: cmdType}, nil
	}

	if len(fields) != 3 {
		return Command{}, fmt.Errorf("move needs a source and a destination: %w", errors.ErrInvalidCommand)
	}
	src, err := chess.ParseSquare(fields[1])
	if err != nil {
		return Command{}, err
	}
	dest, err := chess.ParseSquare(fields[2])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: MoveCommand, Src: src, Dest: dest}, nil
}
