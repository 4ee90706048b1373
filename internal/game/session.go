package game

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/console-chess/internal/chess"
	"github.com/lgbarn/console-chess/internal/config"
	"github.com/lgbarn/console-chess/internal/engine"
	"github.com/lgbarn/console-chess/internal/errors"
	"github.com/lgbarn/console-chess/internal/notation"
	"github.com/lgbarn/console-chess/internal/output"
)

// Status is the session lifecycle state.
type Status int

const (
	Init Status = iota
	Running
	End
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Init:
		return "init"
	case Running:
		return "running"
	case End:
		return "end"
	}
	return "unknown"
}

// Session owns the board for one game and applies commands to it.
// It is single threaded: one command is applied before the next is read.
type Session struct {
	cfg    *config.Config
	view   output.View
	scores *engine.ScoreCalculator
	board  *engine.Board
	status Status
	moves  int

	// firstToMove comes from the start FEN; White for the standard layout.
	firstToMove chess.Colour
}

// NewSession creates a session in the Init state. The board is created
// when the start command arrives.
func NewSession(cfg *config.Config, view output.View) *Session {
	return &Session{
		cfg:    cfg,
		view:   view,
		scores: engine.NewScoreCalculator(cfg.Scores),
		status: Init,

		firstToMove: chess.White,
	}
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Moves returns the number of accepted moves.
func (s *Session) Moves() int {
	return s.moves
}

// Board returns the live board, or nil before the game starts.
func (s *Session) Board() *engine.Board {
	return s.board
}

// Run reads commands from r until the end command, a captured king or EOF.
// Rejected commands are reported through the view and the loop continues.
// The returned error is an I/O failure, never a rule violation.
func (s *Session) Run(r io.Reader) error {
	if err := s.view.Start(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	for s.status != End {
		if s.cfg.Prompt != "" {
			fmt.Fprint(s.cfg.OutputFile, s.cfg.Prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		err := s.Execute(line)
		if err == nil {
			continue
		}
		s.cfg.Logf(config.Commands, "rejected: %v", err)
		if viewErr := s.view.Error(errors.Reason(err)); viewErr != nil {
			return viewErr
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading commands")
	}

	if s.status != End {
		s.status = End
		return s.view.End()
	}
	return nil
}

// Execute parses and applies one console line. Rule violations come back
// as a *errors.CommandError and leave the session state unchanged.
func (s *Session) Execute(line string) error {
	cmd, err := ParseCommand(line)
	if err != nil {
		return &errors.CommandError{Err: err, Line: line}
	}
	s.cfg.Logf(config.Commands, "command: %s", line)

	if err := s.apply(cmd); err != nil {
		return &errors.CommandError{Err: err, Line: line}
	}
	return nil
}

func (s *Session) apply(cmd Command) error {
	if cmd.Type == EndCommand {
		s.status = End
		s.cfg.Logf(config.GameEvents, "game ended by command after %d moves", s.moves)
		return s.view.End()
	}
	if cmd.Type == StartCommand {
		return s.start()
	}
	if s.status != Running {
		return errors.ErrGameNotStarted
	}

	switch cmd.Type {
	case MoveCommand:
		return s.move(cmd.Src, cmd.Dest)
	case StatusCommand:
		return s.showScores()
	case FENCommand:
		return s.view.FEN(notation.ToFEN(s.board, s.sideToMove()))
	}
	return errors.ErrInvalidCommand
}

func (s *Session) start() error {
	if s.status == Running {
		return errors.ErrGameAlreadyStarted
	}

	board := engine.NewInitialBoard()
	firstToMove := chess.White
	if s.cfg.StartFEN != "" {
		var err error
		board, err = notation.FromFEN(s.cfg.StartFEN)
		if err != nil {
			return err
		}
		if !board.IsExistKing() {
			return errors.Wrapf(errors.ErrInvalidFEN, "start position %q needs both kings", s.cfg.StartFEN)
		}
		if firstToMove, err = notation.SideToMove(s.cfg.StartFEN); err != nil {
			return err
		}
	}

	s.board = board
	s.moves = 0
	s.firstToMove = firstToMove
	s.status = Running
	s.cfg.Logf(config.GameEvents, "game started with %d pieces", board.Len())
	return s.view.Board(s.board)
}

func (s *Session) move(src, dest chess.Square) error {
	captured, capturing := s.board.Capture(src, dest)
	if err := s.board.Move(src, dest); err != nil {
		return err
	}
	s.moves++

	s.cfg.Logf(config.GameEvents, "move %d: %s-%s", s.moves, src, dest)
	if capturing {
		s.cfg.Logf(config.GameEvents, "captured %s on %s", captured, dest)
	}

	if err := s.view.Board(s.board); err != nil {
		return err
	}
	if s.board.IsExistKing() {
		return nil
	}
	return s.finish()
}

func (s *Session) finish() error {
	s.status = End
	winner, ok := s.board.Winner()
	if ok {
		s.cfg.Logf(config.GameEvents, "game over: %s wins after %d moves", winner, s.moves)
		if err := s.view.GameOver(winner); err != nil {
			return err
		}
	}
	if err := s.showScores(); err != nil {
		return err
	}
	return s.view.End()
}

func (s *Session) showScores() error {
	return s.view.Scores(s.scores.Sum(s.board, chess.White), s.scores.Sum(s.board, chess.Black))
}

// sideToMove is informational only: moves are not checked against it.
func (s *Session) sideToMove() chess.Colour {
	if s.moves%2 == 0 {
		return s.firstToMove
	}
	return s.firstToMove.Opposite()
}
