// Package game implements the turn controller: piece selection, move
// application, check bookkeeping and undo.
package game

import "github.com/lgbarn/chessrules/internal/chess"

// State is the turn bookkeeping of a game.
type State struct {
	SideToMove chess.Colour `json:"side_to_move"`
	// MoveCount is the number of plies played.
	MoveCount uint `json:"move_count"`
	// Checked is the colour whose king is attacked, or NoColour.
	Checked chess.Colour `json:"checked"`
}

// initialState is White to move, nothing played, nobody in check.
func initialState() State {
	return State{SideToMove: chess.White, Checked: chess.NoColour}
}

// InCheck reports whether the side to move is in check.
func (s State) InCheck() bool {
	return s.Checked != chess.NoColour && s.Checked == s.SideToMove
}

// MoveRecord is one entry of the game history.
type MoveRecord struct {
	chess.Move
	// Ply is the move count after the move.
	Ply uint `json:"ply"`
	// Check is the colour left in check by the move, or NoColour.
	Check chess.Colour `json:"check"`
}

// String returns the move text with a "+" when it gave check.
func (r MoveRecord) String() string {
	if r.Check != chess.NoColour {
		return r.Move.String() + "+"
	}
	return r.Move.String()
}
