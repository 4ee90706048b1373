// Package config provides configuration for the chess console.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/console-chess/internal/errors"
)

// Verbosity levels for LogFile diagnostics.
const (
	Silent     = 0 // nothing
	GameEvents = 1 // start, captures, game end
	Commands   = 2 // every command, including rejected ones
)

// Config holds all program configuration.
type Config struct {
	// Verbosity controls what is written to LogFile.
	Verbosity int

	// StartFEN, when set, replaces the standard opening layout.
	StartFEN string

	// Scores is the material table used for score display.
	Scores *ScoreTable

	// Prompt is written before every command read.
	Prompt string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  GameEvents,
		Scores:     NewScoreTable(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commands {
		return fmt.Errorf("verbosity %d out of range %d..%d: %w", c.Verbosity, Silent, Commands, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output writer: %w", errors.ErrInvalidConfig)
	}
	if c.Scores == nil {
		return fmt.Errorf("no score table: %w", errors.ErrInvalidConfig)
	}
	return c.Scores.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
