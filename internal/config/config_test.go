package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/console-chess/internal/chess"
	chesserrors "github.com/lgbarn/console-chess/internal/errors"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != GameEvents {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, GameEvents)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("default writers should be set")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }},
		{"verbosity negative", func(c *Config) { c.Verbosity = -1 }},
		{"no output", func(c *Config) { c.OutputFile = nil }},
		{"no scores", func(c *Config) { c.Scores = nil }},
		{"negative score", func(c *Config) { c.Scores.Values[chess.Queen] = -9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(GameEvents).Build()

	cfg.Logf(GameEvents, "moved %s", "e2e4")
	cfg.Logf(Commands, "hidden")

	if got, want := buf.String(), "moved e2e4\n"; got != want {
		t.Errorf("log = %q, want %q", got, want)
	}
}

func TestConfig_LogfNilWriter(t *testing.T) {
	cfg := NewConfig()
	cfg.LogFile = nil
	cfg.Logf(Silent, "no panic")
}

func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	scores := NewScoreTable()
	cfg := NewConfigBuilder().
		WithOutput(&out).
		WithLog(&log).
		WithVerbosity(Commands).
		WithStartFEN("8/8/8/8/8/8/8/8 w - - 0 1").
		WithScores(scores).
		WithPrompt("> ").
		Build()

	if cfg.OutputFile != &out || cfg.LogFile != &log {
		t.Error("writers not set by builder")
	}
	if cfg.Verbosity != Commands {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Commands)
	}
	if cfg.StartFEN == "" || cfg.Prompt != "> " || cfg.Scores != scores {
		t.Error("builder did not apply all options")
	}
}

func TestScoreTable_Defaults(t *testing.T) {
	table := NewScoreTable()
	want := map[chess.PieceType]float64{
		chess.Pawn: 1, chess.Knight: 2.5, chess.Bishop: 3, chess.Rook: 5, chess.Queen: 9, chess.King: 0,
	}
	for p, v := range want {
		if got := table.Value(p); got != v {
			t.Errorf("Value(%v) = %v, want %v", p, got, v)
		}
	}
	if table.StackedPawn != table.Value(chess.Pawn) {
		t.Errorf("StackedPawn = %v, want the pawn value %v", table.StackedPawn, table.Value(chess.Pawn))
	}
}

func TestParseScoreTable(t *testing.T) {
	table, err := ParseScoreTable("N=3, b=3.5,K=100,S=0.25")
	if err != nil {
		t.Fatalf("ParseScoreTable() error: %v", err)
	}
	if table.Value(chess.Knight) != 3 || table.Value(chess.Bishop) != 3.5 || table.Value(chess.King) != 100 {
		t.Errorf("overrides not applied: %+v", table.Values)
	}
	if table.Value(chess.Queen) != DefaultQueenScore {
		t.Errorf("Value(Queen) = %v, want default %v", table.Value(chess.Queen), DefaultQueenScore)
	}
	if table.StackedPawn != 0.25 {
		t.Errorf("StackedPawn = %v, want 0.25", table.StackedPawn)
	}

	empty, err := ParseScoreTable("  ")
	if err != nil || empty.Value(chess.Rook) != DefaultRookScore {
		t.Errorf("ParseScoreTable(empty) = %+v, %v; want defaults", empty, err)
	}
}

func TestParseScoreTable_Invalid(t *testing.T) {
	for _, spec := range []string{"Q", "Q=x", "X=1", "QQ=1", "P=-1", "S=-0.5"} {
		t.Run(spec, func(t *testing.T) {
			if _, err := ParseScoreTable(spec); !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("ParseScoreTable(%q) error = %v, want ErrInvalidConfig", spec, err)
			}
		})
	}
}
