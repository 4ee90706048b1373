// Package engine provides chess move validation and board manipulation.
package engine

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/console-chess/internal/chess"
)

// Board maps occupied squares to pieces. A square with no entry is empty.
// The board is owned by a single game session and is not safe for
// concurrent use.
type Board struct {
	pieces map[chess.Square]chess.Piece
}

// NewBoard creates a board holding a copy of the given placement.
func NewBoard(pieces map[chess.Square]chess.Piece) *Board {
	b := &Board{pieces: make(map[chess.Square]chess.Piece, len(pieces))}
	for sq, p := range pieces {
		b.pieces[sq] = p
	}
	return b
}

// NewEmptyBoard creates a board with no pieces.
func NewEmptyBoard() *Board {
	return NewBoard(nil)
}

// Find returns the piece on sq, if any.
func (b *Board) Find(sq chess.Square) (chess.Piece, bool) {
	p, ok := b.pieces[sq]
	return p, ok
}

// HasPiece reports whether sq is occupied.
func (b *Board) HasPiece(sq chess.Square) bool {
	_, ok := b.pieces[sq]
	return ok
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.pieces)
}

// Squares returns the occupied squares ordered by rank, then file.
func (b *Board) Squares() []chess.Square {
	squares := maps.Keys(b.pieces)
	sort.Slice(squares, func(i, j int) bool {
		return squares[i].Index() < squares[j].Index()
	})
	return squares
}

// Pieces returns a copy of the placement.
func (b *Board) Pieces() map[chess.Square]chess.Piece {
	return maps.Clone(b.pieces)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	return NewBoard(b.pieces)
}

// relocate moves the piece on src to dest, removing whatever stood on dest.
func (b *Board) relocate(src, dest chess.Square, piece chess.Piece) {
	delete(b.pieces, src)
	b.pieces[dest] = piece
}
