package chess

// Vector is a signed displacement between two squares.
type Vector struct {
	DCol  int
	DRank int
}

// MaxLength returns the number of unit steps a sliding piece needs to cover v.
func (v Vector) MaxLength() int {
	return max(abs(v.DCol), abs(v.DRank))
}

// IsZero reports whether v is the null displacement.
func (v Vector) IsZero() bool {
	return v.DCol == 0 && v.DRank == 0
}

// Direction is one of the eight unit step directions.
type Direction Vector

// The eight unit directions, White's side at the bottom.
var (
	North     = Direction{DCol: 0, DRank: 1}
	South     = Direction{DCol: 0, DRank: -1}
	East      = Direction{DCol: 1, DRank: 0}
	West      = Direction{DCol: -1, DRank: 0}
	NorthEast = Direction{DCol: 1, DRank: 1}
	NorthWest = Direction{DCol: -1, DRank: 1}
	SouthEast = Direction{DCol: 1, DRank: -1}
	SouthWest = Direction{DCol: -1, DRank: -1}
)

// Direction groups used by the sliding pieces.
var (
	OrthogonalDirections = []Direction{North, South, East, West}
	DiagonalDirections   = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	AllDirections        = []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
)

// IsSameDirection reports whether v is k*d for some integer k > 0.
func (d Direction) IsSameDirection(v Vector) bool {
	if v.IsZero() {
		return false
	}
	if sign(v.DCol) != d.DCol || sign(v.DRank) != d.DRank {
		return false
	}
	// Straight: the off axis is already zero. Diagonal: both axes move equally.
	if d.DCol != 0 && d.DRank != 0 {
		return abs(v.DCol) == abs(v.DRank)
	}
	return true
}

// Multiply returns d scaled by k.
func (d Direction) Multiply(k int) Vector {
	return Vector{DCol: d.DCol * k, DRank: d.DRank * k}
}

// findDirection returns the direction among candidates that v points along.
func findDirection(v Vector, candidates []Direction) (Direction, bool) {
	for _, d := range candidates {
		if d.IsSameDirection(v) {
			return d, true
		}
	}
	return Direction{}, false
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
