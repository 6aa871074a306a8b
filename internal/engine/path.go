package engine

import "github.com/lgbarn/chessrules/internal/chess"

// rookSquares walks the row and column through from.
func rookSquares(board *chess.Board, from chess.Square, colour chess.Colour, m mode) []chess.Square {
	return append(
		axisSquares(board, from, chess.AxisColumn, colour, m),
		axisSquares(board, from, chess.AxisRow, colour, m)...,
	)
}

// bishopSquares walks the four diagonals through from.
func bishopSquares(board *chess.Board, from chess.Square, colour chess.Colour, m mode) []chess.Square {
	return axisSquares(board, from, chess.AxisDiagonal, colour, m)
}

func axisSquares(board *chess.Board, from chess.Square, axis chess.Axis, colour chess.Colour, m mode) []chess.Square {
	// from is always valid here; Rays only fails off the board.
	rays, _ := chess.Rays(from, axis, 0, chess.SideBoth)
	var out []chess.Square
	for _, ray := range rays {
		out = append(out, blockRay(board, ray, colour, m)...)
	}
	return out
}

// blockRay truncates ray at its first occupied square. An enemy blocker is
// included (capturable), a friendly one is not. In attack mode every
// blocker is included, since a defended piece is still covered.
func blockRay(board *chess.Board, ray []chess.Square, colour chess.Colour, m mode) []chess.Square {
	for i, sq := range ray {
		occupant := board.Get(sq)
		if occupant.IsEmpty() {
			continue
		}
		if m == modeAttack || occupant.Colour != colour {
			return ray[:i+1]
		}
		return ray[:i]
	}
	return ray
}
