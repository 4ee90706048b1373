package engine

import (
	"testing"

	"github.com/lgbarn/console-chess/internal/chess"
	"github.com/lgbarn/console-chess/internal/testutil"
)

func TestIsExistKing_InitialBoard(t *testing.T) {
	b := NewInitialBoard()
	testutil.AssertTrue(t, b.IsExistKing())
	if _, ok := b.Winner(); ok {
		t.Error("Winner() ok = true on the initial board; want false")
	}
}

func TestIsExistKing_AfterKingCapture(t *testing.T) {
	tests := []struct {
		name   string
		layout map[string]chess.Piece
		src    string
		dest   string
		winner chess.Colour
	}{
		{
			name: "white takes black king",
			layout: map[string]chess.Piece{
				"e1": chess.W(chess.King), "d1": chess.W(chess.Queen), "d8": chess.B(chess.King),
			},
			src: "d1", dest: "d8",
			winner: chess.White,
		},
		{
			name: "black takes white king",
			layout: map[string]chess.Piece{
				"e1": chess.W(chess.King), "f2": chess.B(chess.Pawn).Start(), "e8": chess.B(chess.King),
			},
			src: "f2", dest: "e1",
			winner: chess.Black,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(testutil.Layout(t, tt.layout))
			testutil.AssertTrue(t, b.IsExistKing(), "before capture")

			mustMove(t, b, tt.src, tt.dest)

			testutil.AssertFalse(t, b.IsExistKing(), "after capture")
			testutil.AssertFalse(t, b.KingExists(tt.winner.Opposite()), "loser king")
			winner, ok := b.Winner()
			if !ok || winner != tt.winner {
				t.Errorf("Winner() = %v, %v; want %v, true", winner, ok, tt.winner)
			}
		})
	}
}

func TestWinner_NoKings(t *testing.T) {
	b := NewEmptyBoard()
	testutil.AssertFalse(t, b.IsExistKing())
	if _, ok := b.Winner(); ok {
		t.Error("Winner() ok = true with no kings; want false")
	}
}
