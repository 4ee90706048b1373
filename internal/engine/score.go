package engine

import (
	"github.com/lgbarn/console-chess/internal/chess"
	"github.com/lgbarn/console-chess/internal/config"
)

// ScoreCalculator sums material per side from a score table.
type ScoreCalculator struct {
	table *config.ScoreTable
}

// NewScoreCalculator creates a calculator; a nil table means the defaults.
func NewScoreCalculator(table *config.ScoreTable) *ScoreCalculator {
	if table == nil {
		table = config.NewScoreTable()
	}
	return &ScoreCalculator{table: table}
}

// Sum returns the material of colour c currently on the board. Pawns that
// share a file with another pawn of the same colour score the table's
// StackedPawn value instead of the pawn value.
func (sc *ScoreCalculator) Sum(b *Board, c chess.Colour) float64 {
	pawnsPerFile := make(map[int]int)
	total := 0.0

	for sq, p := range b.pieces {
		if p.Colour != c {
			continue
		}
		if p.Type == chess.Pawn {
			pawnsPerFile[sq.Col]++
			continue
		}
		total += sc.table.Value(p.Type)
	}

	for _, count := range pawnsPerFile {
		if count > 1 {
			total += float64(count) * sc.table.StackedPawn
		} else {
			total += sc.table.Value(chess.Pawn)
		}
	}
	return total
}

// BlackScore returns Black's material using the default table.
func (b *Board) BlackScore() float64 {
	return NewScoreCalculator(nil).Sum(b, chess.Black)
}

// WhiteScore returns White's material using the default table.
func (b *Board) WhiteScore() float64 {
	return NewScoreCalculator(nil).Sum(b, chess.White)
}
