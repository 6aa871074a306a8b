package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"golang.org/x/exp/slices"
)

// kingSquares returns the adjacent squares the king may step to.
func kingSquares(board *chess.Board, from chess.Square, colour chess.Colour, m mode, rules RuleSet) []chess.Square {
	var adjacent []chess.Square
	for _, axis := range []chess.Axis{chess.AxisColumn, chess.AxisRow, chess.AxisDiagonal} {
		squares, _ := chess.SquaresAlong(from, axis, 1, chess.SideBoth)
		adjacent = append(adjacent, squares...)
	}
	if m == modeAttack {
		return adjacent
	}

	adjacent = withoutFriendly(board, adjacent, colour)
	var unplayable []chess.Square
	if rules == RulesStrict {
		// Covers the line rule too: with the king lifted, a slider's attack
		// continues onto the squares behind it.
		unplayable = attackedAround(board, from, colour, adjacent)
	} else {
		unplayable = lineThreats(board, from, colour)
	}

	out := adjacent[:0]
	for _, sq := range adjacent {
		if !slices.Contains(unplayable, sq) {
			out = append(out, sq)
		}
	}
	return out
}

// lineThreats finds enemy rooks/queens on the king's row and column and
// enemy bishops/queens on its diagonals, with nothing in between, and
// returns the whole line through the king for each, including the squares
// behind it.
func lineThreats(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var out []chess.Square
	scan := func(dirs []chess.Direction, sliders ...chess.Kind) {
		for _, d := range dirs {
			for _, sq := range chess.Ray(from, d, 0) {
				occupant := board.Get(sq)
				if occupant.IsEmpty() {
					continue
				}
				if occupant.Colour != colour && slices.Contains(sliders, occupant.Kind) {
					out = append(out, chess.Line(from, d)...)
				}
				break
			}
		}
	}
	scan(chess.OrthogonalDirections, chess.Rook, chess.Queen)
	scan(chess.DiagonalDirections, chess.Bishop, chess.Queen)
	return out
}

// attackedAround returns the candidate squares any enemy piece attacks once
// the king has been lifted off from, so that sliders see through it.
func attackedAround(board *chess.Board, from chess.Square, colour chess.Colour, candidates []chess.Square) []chess.Square {
	lifted := board.Copy()
	_, _ = lifted.Remove(from)

	var out []chess.Square
	for _, sq := range candidates {
		if IsSquareAttacked(lifted, sq, colour.Opposite()) {
			out = append(out, sq)
		}
	}
	return out
}
