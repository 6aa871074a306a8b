package engine

import "github.com/lgbarn/chessrules/internal/chess"

// filterSelfCheck drops destinations that would leave colour's own king
// attacked. Boards without a king of that colour (custom setups) are not
// filtered.
func filterSelfCheck(board *chess.Board, from chess.Square, colour chess.Colour, dests []chess.Square) []chess.Square {
	if _, err := board.KingSquare(colour); err != nil {
		return dests
	}

	out := make([]chess.Square, 0, len(dests))
	for _, to := range dests {
		if tryMove(board, from, to, colour) {
			out = append(out, to)
		}
	}
	return out
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	testBoard := board.Copy()
	if _, err := testBoard.Move(from, to); err != nil {
		return false
	}

	inCheck, err := IsInCheck(testBoard, colour)
	return err == nil && !inCheck
}
