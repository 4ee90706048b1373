// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/console-chess/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Write one JSON event per line instead of text")
	prompt     = flag.String("prompt", "", "Prompt written before each command")

	// Logging
	logFile   = flag.String("l", "", "Log file (default: stderr)")
	verbosity = flag.Int("v", config.GameEvents, "Log verbosity: 0=none, 1=game events, 2=every command")

	// Game setup
	startFEN  = flag.String("fen", "", "Start from this FEN position instead of the standard layout")
	scoreSpec = flag.String("scores", "", "Piece values, e.g. 'Q=9,R=5,B=3,N=2.5,P=1,K=0,S=0.5' (S = each pawn sharing a file; defaults to P)")

	// Batch replay
	workers = flag.Int("workers", 0, "Scripts replayed in parallel (0 = number of CPU cores)")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values into cfg.
func applyFlags(cfg *config.Config) error {
	scores, err := config.ParseScoreTable(*scoreSpec)
	if err != nil {
		return err
	}

	cfg.Scores = scores
	cfg.Verbosity = *verbosity
	cfg.StartFEN = *startFEN
	cfg.Prompt = *prompt
	return cfg.Validate()
}

// workerCount resolves -workers, using every core when it is not positive.
func workerCount() int {
	if *workers > 0 {
		return *workers
	}
	return runtime.NumCPU()
}
