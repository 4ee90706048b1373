package engine

import "github.com/lgbarn/console-chess/internal/chess"

// backRank is the piece order on ranks 1 and 8, file a first.
var backRank = []chess.PieceType{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// NewInitialBoard creates a board with the standard 32-piece starting position.
func NewInitialBoard() *Board {
	b := NewEmptyBoard()
	for col := 1; col <= chess.BoardSize; col++ {
		b.pieces[chess.Square{Col: col, Rank: 1}] = chess.W(backRank[col-1])
		b.pieces[chess.Square{Col: col, Rank: chess.White.PawnRank()}] = chess.W(chess.Pawn)
		b.pieces[chess.Square{Col: col, Rank: chess.Black.PawnRank()}] = chess.B(chess.Pawn)
		b.pieces[chess.Square{Col: col, Rank: chess.BoardSize}] = chess.B(backRank[col-1])
	}
	return b
}
