package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"golang.org/x/exp/slices"
)

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	kingSq, err := board.KingSquare(colour)
	if err != nil {
		return false, err
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite()), nil
}

// IsSquareAttacked returns true if any piece of byColour attacks target.
func IsSquareAttacked(board *chess.Board, target chess.Square, byColour chess.Colour) bool {
	for _, pl := range board.Pieces(byColour) {
		if slices.Contains(generate(board, pl.Square, pl.Piece(), modeAttack, RulesStrict), target) {
			return true
		}
	}
	return false
}

// Attackers lists the squares of byColour pieces attacking target.
func Attackers(board *chess.Board, target chess.Square, byColour chess.Colour) []chess.Square {
	var out []chess.Square
	for _, pl := range board.Pieces(byColour) {
		if slices.Contains(generate(board, pl.Square, pl.Piece(), modeAttack, RulesStrict), target) {
			out = append(out, pl.Square)
		}
	}
	return out
}

// CheckedAfterMove inspects the board after mover has moved and returns the
// colour now in check: the enemy when mover's pieces attack its king,
// otherwise NoColour. It reports check only; escapes are not evaluated.
func CheckedAfterMove(board *chess.Board, mover chess.Colour) (chess.Colour, error) {
	enemy := mover.Opposite()
	inCheck, err := IsInCheck(board, enemy)
	if err != nil {
		return chess.NoColour, err
	}
	if inCheck {
		return enemy, nil
	}
	return chess.NoColour, nil
}
