package engine

import (
	"github.com/lgbarn/console-chess/internal/chess"
	"github.com/lgbarn/console-chess/internal/errors"
)

// validateRoutes fails if any route square is occupied, unless it is the
// destination and holds an enemy piece.
func (b *Board) validateRoutes(piece chess.Piece, dest chess.Square, routes []chess.Square) error {
	for _, sq := range routes {
		if !b.HasPiece(sq) {
			continue
		}
		if sq == dest {
			if _, ok := b.capturable(piece, dest); ok {
				continue
			}
		}
		return errors.ErrBlockedRoute
	}
	return nil
}

// capturable returns the enemy piece standing on dest, if any.
func (b *Board) capturable(piece chess.Piece, dest chess.Square) (chess.Piece, bool) {
	target, ok := b.Find(dest)
	if !ok || !target.IsDifferentTeam(piece) {
		return chess.Piece{}, false
	}
	return target, true
}
