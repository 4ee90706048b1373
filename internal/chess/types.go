// Package chess provides core chess types: colours, piece kinds, squares,
// vectors and the per-piece route rules.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black (the rank step of a pawn advance).
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnRank returns the rank on which the colour's pawns start.
func (c Colour) PawnRank() int {
	if c == White {
		return 2
	}
	return BoardSize - 1
}

// PieceType represents a chess piece kind.
type PieceType int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// PieceTypes lists every piece kind in value order.
var PieceTypes = []PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter maps 'P', 'N', 'B', 'R', 'Q' or 'K' (either case) to a piece type.
func PieceTypeFromLetter(letter byte) (PieceType, bool) {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	for _, p := range PieceTypes {
		if p.Letter() == letter {
			return p, true
		}
	}
	return 0, false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)
