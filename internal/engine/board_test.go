package engine

import (
	"testing"

	"github.com/lgbarn/console-chess/internal/chess"
	"github.com/lgbarn/console-chess/internal/testutil"
)

func TestNewInitialBoard(t *testing.T) {
	b := NewInitialBoard()

	if b.Len() != 32 {
		t.Fatalf("NewInitialBoard().Len() = %d; want 32", b.Len())
	}

	tests := []struct {
		name  string
		sq    string
		piece chess.Piece
	}{
		{"white rook a1", "a1", chess.W(chess.Rook)},
		{"white knight b1", "b1", chess.W(chess.Knight)},
		{"white bishop c1", "c1", chess.W(chess.Bishop)},
		{"white queen d1", "d1", chess.W(chess.Queen)},
		{"white king e1", "e1", chess.W(chess.King)},
		{"white rook h1", "h1", chess.W(chess.Rook)},
		{"white pawn a2", "a2", chess.W(chess.Pawn)},
		{"white pawn h2", "h2", chess.W(chess.Pawn)},
		{"black pawn e7", "e7", chess.B(chess.Pawn)},
		{"black queen d8", "d8", chess.B(chess.Queen)},
		{"black king e8", "e8", chess.B(chess.King)},
		{"black knight g8", "g8", chess.B(chess.Knight)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Find(chess.MustParseSquare(tt.sq))
			if !ok {
				t.Fatalf("Find(%s) = empty; want %v", tt.sq, tt.piece)
			}
			testutil.AssertEqual(t, got, tt.piece, "Find(%s)", tt.sq)
		})
	}

	for _, name := range []string{"a3", "d4", "e5", "h6"} {
		if b.HasPiece(chess.MustParseSquare(name)) {
			t.Errorf("HasPiece(%s) = true; want false", name)
		}
	}
}

func TestBoard_Squares(t *testing.T) {
	b := NewBoard(testutil.Layout(t, map[string]chess.Piece{
		"h8": chess.B(chess.King),
		"a1": chess.W(chess.King),
		"c1": chess.W(chess.Bishop),
		"a2": chess.W(chess.Pawn),
	}))

	testutil.AssertEqual(t, b.Squares(), testutil.Squares(t, "a1", "c1", "a2", "h8"))
}

func TestNewBoard_CopiesPlacement(t *testing.T) {
	layout := testutil.Layout(t, map[string]chess.Piece{"a1": chess.W(chess.Rook)})
	b := NewBoard(layout)
	delete(layout, chess.MustParseSquare("a1"))

	if !b.HasPiece(chess.MustParseSquare("a1")) {
		t.Error("NewBoard shares the caller's map")
	}

	pieces := b.Pieces()
	pieces[chess.MustParseSquare("h8")] = chess.B(chess.King)
	if b.Len() != 1 {
		t.Error("Pieces() exposes the internal map")
	}

	c := b.Copy()
	if err := c.Move(chess.MustParseSquare("a1"), chess.MustParseSquare("a8")); err != nil {
		t.Fatalf("Move on copy: %v", err)
	}
	if !b.HasPiece(chess.MustParseSquare("a1")) {
		t.Error("Copy() shares state with the original")
	}
}

func TestNewEmptyBoard(t *testing.T) {
	b := NewEmptyBoard()
	if b.Len() != 0 || len(b.Squares()) != 0 {
		t.Errorf("NewEmptyBoard() has %d pieces; want 0", b.Len())
	}
}
