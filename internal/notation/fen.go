// Package notation converts boards to and from FEN.
//
// Only the placement and side-to-move fields carry information here:
// castling and en-passant are not part of the rules, so exported FEN always
// has "-" for both and imported values for them are ignored.
package notation

import (
	"fmt"
	"math/bits"

	cchess "github.com/corentings/chess/v2"
	"github.com/dylhunn/dragontoothmg"
	nchess "github.com/notnil/chess"

	"github.com/lgbarn/console-chess/internal/chess"
	"github.com/lgbarn/console-chess/internal/engine"
	"github.com/lgbarn/console-chess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

var toNotnil = map[chess.Colour]map[chess.PieceType]nchess.Piece{
	chess.White: {
		chess.King:   nchess.WhiteKing,
		chess.Queen:  nchess.WhiteQueen,
		chess.Rook:   nchess.WhiteRook,
		chess.Bishop: nchess.WhiteBishop,
		chess.Knight: nchess.WhiteKnight,
		chess.Pawn:   nchess.WhitePawn,
	},
	chess.Black: {
		chess.King:   nchess.BlackKing,
		chess.Queen:  nchess.BlackQueen,
		chess.Rook:   nchess.BlackRook,
		chess.Bishop: nchess.BlackBishop,
		chess.Knight: nchess.BlackKnight,
		chess.Pawn:   nchess.BlackPawn,
	},
}

// ToFEN renders the board as a FEN string with the given side to move.
func ToFEN(board *engine.Board, toMove chess.Colour) string {
	placement := make(map[nchess.Square]nchess.Piece, board.Len())
	for _, sq := range board.Squares() {
		p, _ := board.Find(sq)
		placement[nchess.Square(sq.Index())] = toNotnil[p.Colour][p.Type]
	}

	side := "w"
	if toMove == chess.Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s - - 0 1", nchess.NewBoard(placement).String(), side)
}

// FromFEN builds a board from a FEN string. Pawns standing off their
// starting rank are treated as having moved.
func FromFEN(fen string) (board *engine.Board, err error) {
	if _, err := cchess.FEN(fen); err != nil {
		return nil, fmt.Errorf("%q: %v: %w", fen, err, errors.ErrInvalidFEN)
	}

	defer func() {
		if r := recover(); r != nil {
			board, err = nil, fmt.Errorf("%q: %v: %w", fen, r, errors.ErrInvalidFEN)
		}
	}()
	position := dragontoothmg.ParseFen(fen)

	placement := make(map[chess.Square]chess.Piece)
	decodeSide(placement, chess.White, &position.White)
	decodeSide(placement, chess.Black, &position.Black)
	return engine.NewBoard(placement), nil
}

// SideToMove returns the colour named in the second FEN field.
func SideToMove(fen string) (chess.Colour, error) {
	if _, err := cchess.FEN(fen); err != nil {
		return chess.White, fmt.Errorf("%q: %v: %w", fen, err, errors.ErrInvalidFEN)
	}
	if dragontoothmg.ParseFen(fen).Wtomove {
		return chess.White, nil
	}
	return chess.Black, nil
}

func decodeSide(placement map[chess.Square]chess.Piece, colour chess.Colour, bb *dragontoothmg.Bitboards) {
	layers := []struct {
		piece chess.PieceType
		bits  uint64
	}{
		{chess.Pawn, bb.Pawns},
		{chess.Knight, bb.Knights},
		{chess.Bishop, bb.Bishops},
		{chess.Rook, bb.Rooks},
		{chess.Queen, bb.Queens},
		{chess.King, bb.Kings},
	}

	for _, layer := range layers {
		for x := layer.bits; x != 0; x &= x - 1 {
			sq := chess.SquareFromIndex(bits.TrailingZeros64(x))
			p := chess.NewPiece(layer.piece, colour)
			if p.Type == chess.Pawn && sq.Rank != colour.PawnRank() {
				p = p.Start()
			}
			placement[sq] = p
		}
	}
}
