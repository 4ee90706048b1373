package chess

import (
	"fmt"

	"github.com/lgbarn/console-chess/internal/errors"
)

// Square is a board coordinate. Col 1..8 maps to files a..h and Rank 1..8
// to ranks 1..8. The zero value is not a valid square.
type Square struct {
	Col  int
	Rank int
}

// NewSquare returns the square at the given column and rank (both 1..8).
func NewSquare(col, rank int) (Square, error) {
	sq := Square{Col: col, Rank: rank}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("column %d, rank %d: %w", col, rank, errors.ErrInvalidCoordinate)
	}
	return sq, nil
}

// ParseSquare parses algebraic text such as "e4". The file letter may be upper case.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	file := s[0]
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	if file < FirstCol || file > LastCol || s[1] < FirstRank || s[1] > LastRank {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	return Square{Col: int(file-ColBase) + 1, Rank: int(s[1]-RankBase) + 1}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed layouts and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= 1 && s.Col <= BoardSize && s.Rank >= 1 && s.Rank <= BoardSize
}

// String returns the algebraic form, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Col, s.Rank)
	}
	return string([]byte{byte(ColBase + s.Col - 1), byte(RankBase + s.Rank - 1)})
}

// Add returns the square displaced by v. The result is not range checked.
func (s Square) Add(v Vector) Square {
	return Square{Col: s.Col + v.DCol, Rank: s.Rank + v.DRank}
}

// VectorFrom returns the displacement from src to s.
func (s Square) VectorFrom(src Square) Vector {
	return Vector{DCol: s.Col - src.Col, DRank: s.Rank - src.Rank}
}

// Index returns the little-endian rank-file index (a1 = 0, h8 = 63).
func (s Square) Index() int {
	return (s.Rank-1)*BoardSize + (s.Col - 1)
}

// SquareFromIndex is the inverse of Index.
func SquareFromIndex(idx int) Square {
	return Square{Col: idx%BoardSize + 1, Rank: idx/BoardSize + 1}
}

// AllSquares returns the 64 squares, rank 1 first, file a first within a rank.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for idx := 0; idx < BoardSize*BoardSize; idx++ {
		squares = append(squares, SquareFromIndex(idx))
	}
	return squares
}
