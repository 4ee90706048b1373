package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/console-chess/internal/chess"
	"github.com/lgbarn/console-chess/internal/errors"
)

// Default material values.
const (
	DefaultPawnScore    = 1.0
	DefaultKnightScore  = 2.5
	DefaultBishopScore  = 3.0
	DefaultRookScore    = 5.0
	DefaultQueenScore   = 9.0
	DefaultKingScore    = 0.0
	DefaultStackedPawns = DefaultPawnScore
)

// ScoreTable holds the material value of each piece type.
type ScoreTable struct {
	Values map[chess.PieceType]float64

	// StackedPawn replaces the pawn value for every pawn that shares its
	// file with another pawn of the same colour. It defaults to the pawn
	// value; "S=0.5" discounts doubled pawns.
	StackedPawn float64
}

// NewScoreTable creates a ScoreTable with the conventional values.
func NewScoreTable() *ScoreTable {
	return &ScoreTable{
		Values: map[chess.PieceType]float64{
			chess.Pawn:   DefaultPawnScore,
			chess.Knight: DefaultKnightScore,
			chess.Bishop: DefaultBishopScore,
			chess.Rook:   DefaultRookScore,
			chess.Queen:  DefaultQueenScore,
			chess.King:   DefaultKingScore,
		},
		StackedPawn: DefaultStackedPawns,
	}
}

// Value returns the score of a piece type; unknown types score zero.
func (s *ScoreTable) Value(p chess.PieceType) float64 {
	return s.Values[p]
}

// Validate checks that no value is negative.
func (s *ScoreTable) Validate() error {
	for _, p := range chess.PieceTypes {
		if s.Values[p] < 0 {
			return fmt.Errorf("negative score %v for %v: %w", s.Values[p], p, errors.ErrInvalidConfig)
		}
	}
	if s.StackedPawn < 0 {
		return fmt.Errorf("negative stacked pawn score %v: %w", s.StackedPawn, errors.ErrInvalidConfig)
	}
	return nil
}

// ParseScoreTable overrides the default table with a spec such as
// "Q=9,R=5,B=3,N=2.5,P=1,K=0,S=0.5". S sets the stacked pawn score.
// An empty spec yields the defaults.
func ParseScoreTable(spec string) (*ScoreTable, error) {
	table := NewScoreTable()
	if strings.TrimSpace(spec) == "" {
		return table, nil
	}

	for _, entry := range strings.Split(spec, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok || len(key) != 1 {
			return nil, fmt.Errorf("score entry %q: %w", entry, errors.ErrInvalidConfig)
		}
		score, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("score entry %q: %v: %w", entry, err, errors.ErrInvalidConfig)
		}
		if key == "S" || key == "s" {
			table.StackedPawn = score
			continue
		}
		piece, ok := chess.PieceTypeFromLetter(key[0])
		if !ok {
			return nil, fmt.Errorf("unknown piece %q: %w", key, errors.ErrInvalidConfig)
		}
		table.Values[piece] = score
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
