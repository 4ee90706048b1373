// Package output renders game state for the console.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/console-chess/internal/chess"
	"github.com/lgbarn/console-chess/internal/engine"
)

// View is the interface the game session reports through.
// TextView prints for people, JSONView emits one object per event.
type View interface {
	// Start announces the available commands.
	Start() error

	// Board prints the current position.
	Board(b *engine.Board) error

	// Scores prints each side's material.
	Scores(white, black float64) error

	// FEN prints the position in Forsyth-Edwards notation.
	FEN(fen string) error

	// Error reports a rejected command.
	Error(reason string) error

	// GameOver announces that a king was captured.
	GameOver(winner chess.Colour) error

	// End announces that the session is closing.
	End() error
}

// Empty squares are drawn with this byte.
const emptySquare = '.'

// RenderBoard draws the board rank 8 first, Black in upper case and
// White in lower case.
func RenderBoard(b *engine.Board) string {
	var sb strings.Builder
	for rank := chess.BoardSize; rank >= 1; rank-- {
		for col := 1; col <= chess.BoardSize; col++ {
			if p, ok := b.Find(chess.Square{Col: col, Rank: rank}); ok {
				sb.WriteByte(p.Symbol())
			} else {
				sb.WriteByte(emptySquare)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TextView writes human-readable output.
type TextView struct {
	w io.Writer
}

// NewTextView creates a TextView writing to w.
func NewTextView(w io.Writer) *TextView {
	return &TextView{w: w}
}

// Start prints the command summary.
func (v *TextView) Start() error {
	_, err := fmt.Fprint(v.w,
		"> Chess game\n"+
			"> start game: start\n"+
			"> end game: end\n"+
			"> show scores: status\n"+
			"> show FEN: fen\n"+
			"> move: move source destination, e.g. move b2 b3\n")
	return err
}

// Board prints the position.
func (v *TextView) Board(b *engine.Board) error {
	_, err := fmt.Fprintln(v.w, RenderBoard(b))
	return err
}

// Scores prints both sides' material.
func (v *TextView) Scores(white, black float64) error {
	_, err := fmt.Fprintf(v.w, "Black score: %g\nWhite score: %g\n", black, white)
	return err
}

// FEN prints the FEN string.
func (v *TextView) FEN(fen string) error {
	_, err := fmt.Fprintln(v.w, fen)
	return err
}

// Error prints a rejected command.
func (v *TextView) Error(reason string) error {
	_, err := fmt.Fprintf(v.w, "[ERROR]: %s\n", reason)
	return err
}

// GameOver announces the captured king.
func (v *TextView) GameOver(winner chess.Colour) error {
	_, err := fmt.Fprintf(v.w, "The %s king was captured. %s wins!\n", winner.Opposite(), winner)
	return err
}

// End prints the closing message.
func (v *TextView) End() error {
	_, err := fmt.Fprintln(v.w, "Game ended.")
	return err
}

// JSONEvent is one line of JSONView output.
type JSONEvent struct {
	Event  string             `json:"event"`
	Board  []string           `json:"board,omitempty"`
	Scores map[string]float64 `json:"scores,omitempty"`
	FEN    string             `json:"fen,omitempty"`
	Error  string             `json:"error,omitempty"`
	Winner string             `json:"winner,omitempty"`
}

// JSONView writes one JSON object per line, for scripted play.
type JSONView struct {
	enc *json.Encoder
}

// NewJSONView creates a JSONView writing to w.
func NewJSONView(w io.Writer) *JSONView {
	return &JSONView{enc: json.NewEncoder(w)}
}

// Start emits a start event.
func (v *JSONView) Start() error {
	return v.enc.Encode(JSONEvent{Event: "start"})
}

// Board emits the board as eight rank strings, rank 8 first.
func (v *JSONView) Board(b *engine.Board) error {
	ranks := strings.Split(strings.TrimSuffix(RenderBoard(b), "\n"), "\n")
	return v.enc.Encode(JSONEvent{Event: "board", Board: ranks})
}

// Scores emits a scores event.
func (v *JSONView) Scores(white, black float64) error {
	return v.enc.Encode(JSONEvent{
		Event:  "scores",
		Scores: map[string]float64{chess.White.String(): white, chess.Black.String(): black},
	})
}

// FEN emits a fen event.
func (v *JSONView) FEN(fen string) error {
	return v.enc.Encode(JSONEvent{Event: "fen", FEN: fen})
}

// Error emits an error event.
func (v *JSONView) Error(reason string) error {
	return v.enc.Encode(JSONEvent{Event: "error", Error: reason})
}

// GameOver emits a game over event.
func (v *JSONView) GameOver(winner chess.Colour) error {
	return v.enc.Encode(JSONEvent{Event: "gameover", Winner: winner.String()})
}

// End emits an end event.
func (v *JSONView) End() error {
	return v.enc.Encode(JSONEvent{Event: "end"})
}
