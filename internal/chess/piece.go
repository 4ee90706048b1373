package chess

// Piece is a coloured piece. The set of kinds is closed; movement is
// selected by Type in Routes. Only pawns use the moved flag.
type Piece struct {
	Type   PieceType
	Colour Colour
	moved  bool
}

// NewPiece creates a piece that has not moved yet.
func NewPiece(t PieceType, c Colour) Piece {
	return Piece{Type: t, Colour: c}
}

// W creates a white piece.
func W(t PieceType) Piece {
	return NewPiece(t, White)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return NewPiece(t, Black)
}

// IsDifferentTeam reports whether other belongs to the opposing side.
func (p Piece) IsDifferentTeam(other Piece) bool {
	return p.Colour != other.Colour
}

// HasMoved reports whether the piece has lost its first-move privilege.
func (p Piece) HasMoved() bool {
	return p.moved
}

// Start returns p with the two-square pawn advance disabled.
func (p Piece) Start() Piece {
	p.moved = true
	return p
}

// Symbol returns the board letter: upper case for Black, lower case for White.
func (p Piece) Symbol() byte {
	letter := p.Type.Letter()
	if p.Colour == White {
		return letter + 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Type.String()
}
