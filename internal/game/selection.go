package game

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/chess"
)

// Outcome is what a square click did.
type Outcome int

const (
	// OutcomeDeselected means nothing is selected after the click.
	OutcomeDeselected Outcome = iota
	// OutcomeSelected means a piece is selected and its destinations are known.
	OutcomeSelected
	// OutcomeMoved means the selected piece moved and the turn passed.
	OutcomeMoved
)

var outcomeNames = []string{"deselected", "selected", "moved"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// Result reports the effect of SelectSquare.
type Result struct {
	Outcome Outcome
	// Destinations are set when a piece was selected. The list may be
	// empty: a piece with no moves is still selected.
	Destinations []chess.Square
	// Move is set when a move was played.
	Move *MoveRecord
}

// Deselected reports whether the click left nothing selected.
func (r Result) Deselected() bool {
	return r.Outcome != OutcomeSelected
}

// selection is the transient state between picking a piece and moving it.
type selection struct {
	square       chess.Square
	destinations []chess.Square
}

// Highlights is what a front-end needs to paint the board: the selected
// square, its empty and enemy-occupied destinations, and the checked king.
type Highlights struct {
	Selected chess.Square   `json:"selected,omitempty"`
	Playable []chess.Square `json:"playable,omitempty"`
	Killable []chess.Square `json:"killable,omitempty"`
	Checked  chess.Square   `json:"checked,omitempty"`
}

// Destinations returns playable and killable squares together.
func (h Highlights) Destinations() []chess.Square {
	out := make([]chess.Square, 0, len(h.Playable)+len(h.Killable))
	out = append(out, h.Playable...)
	return append(out, h.Killable...)
}
