package engine

import "github.com/lgbarn/console-chess/internal/chess"

// IsExistKing reports whether both a Black and a White king are on the board.
// It turns false as soon as either side's king is captured, which is the
// only game-over condition.
func (b *Board) IsExistKing() bool {
	return b.KingExists(chess.Black) && b.KingExists(chess.White)
}

// KingExists reports whether the given side still has a king.
func (b *Board) KingExists(c chess.Colour) bool {
	for _, p := range b.pieces {
		if p.Type == chess.King && p.Colour == c {
			return true
		}
	}
	return false
}

// Winner returns the side whose king remains after the other side's king
// was captured. ok is false while both kings stand or when neither does.
func (b *Board) Winner() (winner chess.Colour, ok bool) {
	white, black := b.KingExists(chess.White), b.KingExists(chess.Black)
	switch {
	case white && !black:
		return chess.White, true
	case black && !white:
		return chess.Black, true
	}
	return chess.White, false
}
