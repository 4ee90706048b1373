package engine

import (
	"github.com/lgbarn/console-chess/internal/chess"
	"github.com/lgbarn/console-chess/internal/errors"
)

// Move validates and applies a move from src to dest. On success the piece
// is relocated, capturing any enemy piece on dest. On failure the board is
// left untouched and the returned *errors.MoveError wraps one of
// ErrInvalidCoordinate, ErrNoPieceAtSource, ErrNoLegalRoute,
// ErrInvalidPawnMove or ErrBlockedRoute.
func (b *Board) Move(src, dest chess.Square) error {
	if !src.Valid() || !dest.Valid() {
		return moveError(src, dest, errors.ErrInvalidCoordinate)
	}

	piece, ok := b.Find(src)
	if !ok {
		return moveError(src, dest, errors.ErrNoPieceAtSource)
	}

	routes := piece.Routes(src, dest)
	if len(routes) == 0 {
		return moveError(src, dest, errors.ErrNoLegalRoute)
	}

	if piece.Type == chess.Pawn {
		if err := b.validatePawnMove(piece, src, dest); err != nil {
			return moveError(src, dest, err)
		}
	}

	if err := b.validateRoutes(piece, dest, routes); err != nil {
		return moveError(src, dest, err)
	}

	if piece.Type == chess.Pawn {
		piece = piece.Start()
	}
	b.relocate(src, dest, piece)
	return nil
}

// Capture reports what Move(src, dest) would remove from dest, without
// validating the move. Off-board squares capture nothing.
func (b *Board) Capture(src, dest chess.Square) (chess.Piece, bool) {
	if !src.Valid() || !dest.Valid() {
		return chess.Piece{}, false
	}
	piece, ok := b.Find(src)
	if !ok {
		return chess.Piece{}, false
	}
	return b.capturable(piece, dest)
}

func moveError(src, dest chess.Square, err error) error {
	return &errors.MoveError{Err: err, Src: src.String(), Dest: dest.String()}
}
