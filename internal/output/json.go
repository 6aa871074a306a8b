package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/game"
)

// StateDocument is the JSON form of a game's current state.
type StateDocument struct {
	FEN          string            `json:"fen"`
	SideToMove   chess.Colour      `json:"sideToMove"`
	MoveCount    uint              `json:"moveCount"`
	Checked      chess.Colour      `json:"checked"`
	Rules        string            `json:"rules"`
	Pieces       []chess.Placement `json:"pieces"`
	Selected     chess.Square      `json:"selected,omitempty"`
	Destinations []chess.Square    `json:"destinations,omitempty"`
	Killable     []chess.Square    `json:"killable,omitempty"`
	History      []string          `json:"history,omitempty"`
}

// StateToJSON converts a game to its state document.
func StateToJSON(g *game.Game) *StateDocument {
	state := g.State()
	h := g.Highlights()
	doc := &StateDocument{
		FEN:          g.FEN(),
		SideToMove:   state.SideToMove,
		MoveCount:    state.MoveCount,
		Checked:      state.Checked,
		Rules:        g.Rules().String(),
		Pieces:       g.Board().Occupied(),
		Selected:     h.Selected,
		Destinations: h.Destinations(),
		Killable:     h.Killable,
	}
	for _, rec := range g.History() {
		doc.History = append(doc.History, rec.String())
	}
	return doc
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc *StateDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
