package engine

import (
	"github.com/lgbarn/console-chess/internal/chess"
	"github.com/lgbarn/console-chess/internal/errors"
)

// validatePawnMove enforces the capture rules layered on top of pawn routes:
// a diagonal step must capture, a straight step must not.
func (b *Board) validatePawnMove(pawn chess.Piece, src, dest chess.Square) error {
	_, canCapture := b.capturable(pawn, dest)
	diagonal := pawn.IsDiagonalMove(src, dest)

	if diagonal && !canCapture {
		return errors.Wrapf(errors.ErrInvalidPawnMove, "diagonal step to %s without capture", dest)
	}
	if !diagonal && canCapture {
		return errors.Wrapf(errors.ErrInvalidPawnMove, "straight step onto piece at %s", dest)
	}
	return nil
}
