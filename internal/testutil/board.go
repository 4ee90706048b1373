package testutil

import (
	"testing"

	"github.com/lgbarn/console-chess/internal/chess"
)

// Squares parses algebraic names into squares, failing the test on bad input.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", name, err)
		}
		squares = append(squares, sq)
	}
	return squares
}

// Layout converts a name-keyed placement such as {"e1": chess.W(chess.King)}
// into the square map a board is built from.
func Layout(t *testing.T, placement map[string]chess.Piece) map[chess.Square]chess.Piece {
	t.Helper()
	layout := make(map[chess.Square]chess.Piece, len(placement))
	for name, piece := range placement {
		layout[Squares(t, name)[0]] = piece
	}
	return layout
}
