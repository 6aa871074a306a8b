package engine

import "github.com/lgbarn/chessrules/internal/chess"

// pawnSquares returns pushes along the pawn's column plus diagonal captures.
// White moves towards row 8, Black towards row 1.
func pawnSquares(board *chess.Board, from chess.Square, colour chess.Colour, m mode, rules RuleSet) []chess.Square {
	side := chess.SideFar
	if colour == chess.Black {
		side = chess.SideNear
	}

	// from is always valid here.
	diagonals, _ := chess.SquaresAlong(from, chess.AxisDiagonal, 1, side)
	if m == modeAttack {
		return diagonals
	}

	limit := 1
	if from.Row() == chess.PawnStartRow(colour) {
		limit = 2
	}
	out, _ := chess.SquaresAlong(from, chess.AxisColumn, limit, side)

	if rules == RulesStrict {
		out = pushesUntilBlocked(board, out)
	}

	for _, sq := range diagonals {
		occupant := board.Get(sq)
		if !occupant.IsEmpty() && occupant.Colour != colour {
			out = append(out, sq)
		}
	}
	return out
}

// pushesUntilBlocked keeps forward squares up to the first occupied one.
// Pawns never capture straight ahead.
func pushesUntilBlocked(board *chess.Board, pushes []chess.Square) []chess.Square {
	for i, sq := range pushes {
		if !board.Get(sq).IsEmpty() {
			return pushes[:i]
		}
	}
	return pushes
}
