package chess

// Routes returns the squares p passes through moving from src to dest,
// excluding src and including dest, in travel order. Occupancy is ignored.
// The result is empty when p cannot reach dest under its movement rule.
func (p Piece) Routes(src, dest Square) []Square {
	v := dest.VectorFrom(src)
	if v.IsZero() {
		return nil
	}

	switch p.Type {
	case Pawn:
		return p.pawnRoutes(src, v)
	case Knight:
		return jumpRoutes(dest, isKnightJump(v))
	case Bishop:
		return slideRoutes(src, v, DiagonalDirections)
	case Rook:
		return slideRoutes(src, v, OrthogonalDirections)
	case Queen:
		return slideRoutes(src, v, AllDirections)
	case King:
		return jumpRoutes(dest, abs(v.DCol) <= 1 && abs(v.DRank) <= 1)
	}
	return nil
}

// IsDiagonalMove reports whether dest is one step diagonally from src.
func (p Piece) IsDiagonalMove(src, dest Square) bool {
	v := dest.VectorFrom(src)
	return abs(v.DCol) == 1 && abs(v.DRank) == 1
}

// slideRoutes steps along the matching direction until v is covered.
func slideRoutes(src Square, v Vector, directions []Direction) []Square {
	d, ok := findDirection(v, directions)
	if !ok {
		return nil
	}
	steps := v.MaxLength()
	routes := make([]Square, 0, steps)
	for step := 1; step <= steps; step++ {
		routes = append(routes, src.Add(d.Multiply(step)))
	}
	return routes
}

// jumpRoutes returns [dest] for a legal single-step or jump move.
func jumpRoutes(dest Square, legal bool) []Square {
	if !legal {
		return nil
	}
	return []Square{dest}
}

func isKnightJump(v Vector) bool {
	dc, dr := abs(v.DCol), abs(v.DRank)
	return (dc == 1 && dr == 2) || (dc == 2 && dr == 1)
}

// pawnRoutes handles the forward step, the first-move double step and the
// diagonal capture step. Whether a capture is possible is decided by the board.
func (p Piece) pawnRoutes(src Square, v Vector) []Square {
	forward := p.Colour.PawnDirection()

	switch {
	case v.DCol == 0 && v.DRank == forward:
		return []Square{src.Add(v)}
	case v.DCol == 0 && v.DRank == 2*forward && !p.moved:
		mid := src.Add(Vector{DRank: forward})
		return []Square{mid, src.Add(v)}
	case abs(v.DCol) == 1 && v.DRank == forward:
		return []Square{src.Add(v)}
	}
	return nil
}
