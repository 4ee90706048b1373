package game

import (
	"bytes"
	"io"
	"os"

	"github.com/lgbarn/console-chess/internal/config"
	"github.com/lgbarn/console-chess/internal/errors"
	"github.com/lgbarn/console-chess/internal/output"
	"github.com/lgbarn/console-chess/internal/worker"
)

// ViewFactory builds the renderer for one session.
type ViewFactory func(w io.Writer) output.View

// ScriptOpener opens the command script named by a work item.
type ScriptOpener func(name string) (io.ReadCloser, error)

// OpenFile opens scripts from the filesystem.
func OpenFile(name string) (io.ReadCloser, error) {
	return os.Open(name) //nolint:gosec // G304: script paths come from the command line
}

// Replayer runs each command script in its own Session. The shared
// config is copied per script so output never interleaves.
type Replayer struct {
	cfg     *config.Config
	newView ViewFactory
	open    ScriptOpener
}

// NewReplayer creates a Replayer reading scripts through open.
func NewReplayer(cfg *config.Config, newView ViewFactory, open ScriptOpener) *Replayer {
	return &Replayer{cfg: cfg, newView: newView, open: open}
}

// Replay is a worker.ProcessFunc.
func (r *Replayer) Replay(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Name: item.Name, Index: item.Index}

	script, err := r.open(item.Name)
	if err != nil {
		result.Error = errors.Wrapf(err, "opening script %s", item.Name)
		return result
	}
	defer script.Close()

	var buf bytes.Buffer
	cfg := *r.cfg
	cfg.OutputFile = &buf
	cfg.Prompt = ""

	session := NewSession(&cfg, r.newView(&buf))
	if err := session.Run(script); err != nil {
		result.Error = errors.Wrapf(err, "replaying %s", item.Name)
	}

	result.Output = buf.Bytes()
	result.Moves = session.Moves()
	if session.Board() != nil {
		if winner, ok := session.Board().Winner(); ok {
			result.Winner = winner.String()
		}
	}
	return result
}

// ReplayAll replays every named script on a pool of workers and returns the
// results in the order the names were given.
func ReplayAll(r *Replayer, names []string, workers int) []worker.ProcessResult {
	pool := worker.NewPool(r.Replay,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(names)+1),
	)
	pool.Start()

	for i, name := range names {
		pool.Submit(worker.WorkItem{Name: name, Index: i})
	}
	go pool.Close()

	return pool.Collect()
}
