package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/game"
)

// StateWriter is the interface for writing game states to output.
// Different implementations handle different output formats (diagram, JSON).
type StateWriter interface {
	// WriteState writes the current state of g.
	WriteState(g *game.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewStateWriter picks the writer cfg asks for.
func NewStateWriter(w io.Writer, cfg *config.Config) StateWriter {
	if cfg.Output.JSON {
		return NewJSONWriter(w)
	}
	return NewDiagramWriter(w, cfg.Output.Coordinates)
}

// DiagramWriter writes each state as a diagram followed by a status line.
type DiagramWriter struct {
	w           io.Writer
	coordinates bool
}

// NewDiagramWriter creates a new diagram writer.
func NewDiagramWriter(w io.Writer, coordinates bool) *DiagramWriter {
	return &DiagramWriter{w: w, coordinates: coordinates}
}

// WriteState writes the diagram immediately.
func (dw *DiagramWriter) WriteState(g *game.Game) error {
	if err := Diagram(dw.w, g.Board(), g.Highlights(), dw.coordinates); err != nil {
		return err
	}
	_, err := fmt.Fprintln(dw.w, StatusLine(g))
	return err
}

// Flush is a no-op: diagrams are written immediately.
func (dw *DiagramWriter) Flush() error {
	return nil
}

// Close closes the diagram writer.
func (dw *DiagramWriter) Close() error {
	return nil
}

// StatusLine summarises whose turn it is, the ply count and any check.
func StatusLine(g *game.Game) string {
	state := g.State()
	line := fmt.Sprintf("%s to move, ply %d", state.SideToMove, state.MoveCount)
	if state.InCheck() {
		line += ", in check"
	}
	return line
}

// JSONOutput holds multiple states for array output.
type JSONOutput struct {
	States []*StateDocument `json:"states"`
}

// JSONWriter buffers state documents and writes them as a JSON array on
// Flush or Close.
type JSONWriter struct {
	w      io.Writer
	states []*StateDocument
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteState converts the state now; later moves do not change it.
func (jw *JSONWriter) WriteState(g *game.Game) error {
	jw.states = append(jw.states, StateToJSON(g))
	return nil
}

// Flush writes all buffered states as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.states) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{States: jw.states})

	// Clear buffer after writing
	jw.states = jw.states[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
