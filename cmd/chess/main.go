// chess is a two-player console chess game.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/console-chess/internal/config"
	"github.com/lgbarn/console-chess/internal/game"
	"github.com/lgbarn/console-chess/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	closers := setupFiles(cfg)
	defer closeAll(closers)

	if flag.NArg() > 0 {
		failed := runBatch(cfg, flag.Args())
		closeAll(closers)
		if failed {
			os.Exit(1)
		}
		return
	}

	session := game.NewSession(cfg, newView(cfg.OutputFile))
	if err := session.Run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeAll(closers)
		os.Exit(1)
	}
}

// newView selects the text or JSON renderer.
func newView(w io.Writer) output.View {
	if *jsonOutput {
		return output.NewJSONView(w)
	}
	return output.NewTextView(w)
}

// runBatch replays each script file in its own game and writes the
// transcripts in argument order. It reports whether any script failed.
func runBatch(cfg *config.Config, scripts []string) bool {
	replayer := game.NewReplayer(cfg, newView, game.OpenFile)
	failed := false
	for _, res := range game.ReplayAll(replayer, scripts, workerCount()) {
		if res.Error != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", res.Error)
			failed = true
			continue
		}
		if len(scripts) > 1 {
			fmt.Fprintf(cfg.OutputFile, "== %s ==\n", res.Name)
		}
		cfg.OutputFile.Write(res.Output) //nolint:errcheck
		cfg.Logf(config.GameEvents, "%s: %d moves, winner %q", res.Name, res.Moves, res.Winner)
	}
	return failed
}

// setupFiles opens the output and log files named on the command line.
func setupFiles(cfg *config.Config) []io.Closer {
	var closers []io.Closer

	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
			os.Exit(1)
		}
		cfg.OutputFile = file
		closers = append(closers, file)
	}

	if *logFile != "" {
		file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
		closers = append(closers, file)
	}

	return closers
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options] [script...]\n\n")
	fmt.Fprintf(os.Stderr, "Reads commands from standard input, or replays each script file:\n")
	fmt.Fprintf(os.Stderr, "  start             set up the board\n")
	fmt.Fprintf(os.Stderr, "  move <src> <dst>  move a piece, e.g. move e2 e4\n")
	fmt.Fprintf(os.Stderr, "  status            show both sides' scores\n")
	fmt.Fprintf(os.Stderr, "  fen               show the position as FEN\n")
	fmt.Fprintf(os.Stderr, "  end               quit\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
