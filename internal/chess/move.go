package chess

import "fmt"

// Move represents a single applied move.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`

	// The piece being moved.
	Piece Piece `json:"piece"`

	// The piece captured (Empty if no capture).
	Captured Piece `json:"captured"`
}

// IsCapture reports whether the move removed an enemy piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// String returns long algebraic text, e.g. "Ng1-f3" or "Qd1xd7".
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	letter := ""
	if m.Piece.Kind != Pawn && !m.Piece.IsEmpty() {
		letter = string(m.Piece.Kind.Letter())
	}
	return fmt.Sprintf("%s%s%s%s", letter, m.From, sep, m.To)
}
