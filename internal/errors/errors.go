// Package errors provides sentinel errors and error types for the chess console.
// Every rule violation wraps one of two categories, ErrIllegalMove or
// ErrIllegalInput, so callers can report a single "illegal move / illegal
// input" class while still inspecting the precise kind with errors.Is().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Category errors. Every kind below wraps one of these.
var (
	// ErrIllegalMove indicates a move that violates the movement rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrIllegalInput indicates malformed user input.
	ErrIllegalInput = errors.New("illegal input")
)

// Move rule violations.
var (
	// ErrNoPieceAtSource indicates the source square is empty.
	ErrNoPieceAtSource = fmt.Errorf("%w: no piece at source square", ErrIllegalMove)

	// ErrNoLegalRoute indicates the piece cannot reach the destination under its movement rule.
	ErrNoLegalRoute = fmt.Errorf("%w: piece cannot move that way", ErrIllegalMove)

	// ErrInvalidPawnMove indicates a diagonal pawn move without a capture
	// or a straight pawn move onto an enemy piece.
	ErrInvalidPawnMove = fmt.Errorf("%w: invalid pawn move", ErrIllegalMove)

	// ErrBlockedRoute indicates an occupied square along the route.
	ErrBlockedRoute = fmt.Errorf("%w: route is blocked", ErrIllegalMove)
)

// Input violations.
var (
	// ErrInvalidCoordinate indicates a square outside a1..h8 or malformed square text.
	ErrInvalidCoordinate = fmt.Errorf("%w: invalid coordinate", ErrIllegalInput)

	// ErrInvalidCommand indicates an unknown or malformed console command.
	ErrInvalidCommand = fmt.Errorf("%w: invalid command", ErrIllegalInput)

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = fmt.Errorf("%w: invalid FEN string", ErrIllegalInput)

	// ErrGameNotStarted indicates a command that needs a running game.
	ErrGameNotStarted = fmt.Errorf("%w: game has not started", ErrIllegalInput)

	// ErrGameAlreadyStarted indicates a second start command.
	ErrGameAlreadyStarted = fmt.Errorf("%w: game already started", ErrIllegalInput)
)

// ErrInvalidConfig indicates invalid configuration values.
var ErrInvalidConfig = errors.New("invalid configuration")

// MoveError wraps a move failure with the squares involved.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Src  string // Source square in algebraic form
	Dest string // Destination square in algebraic form
}

// Error returns a formatted error message including the move.
func (e *MoveError) Error() string {
	context := fmt.Sprintf("move %s-%s", e.Src, e.Dest)
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// CommandError wraps a failure with the console line that caused it.
type CommandError struct {
	Err  error  // The underlying error
	Line string // The raw input line
}

// Error returns a formatted error message with the offending input.
func (e *CommandError) Error() string {
	var parts []string
	if line := strings.TrimSpace(e.Line); line != "" {
		parts = append(parts, fmt.Sprintf("command %q", line))
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return "command error"
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Reason returns the human-readable reason for err, dropping the context
// added by MoveError and CommandError so the console can print just the rule.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var moveErr *MoveError
	if errors.As(err, &moveErr) && moveErr.Err != nil {
		return moveErr.Err.Error()
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Err != nil {
		return Reason(cmdErr.Err)
	}
	return err.Error()
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
