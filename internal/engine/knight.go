package engine

import "github.com/lgbarn/chessrules/internal/chess"

// knightSquares builds the "L": two squares along a column or row, then one
// square sideways from there.
func knightSquares(board *chess.Board, from chess.Square, colour chess.Colour, m mode, rules RuleSet) []chess.Square {
	var out []chess.Square
	legs := []struct {
		long  chess.Direction
		sides []chess.Direction
	}{
		{chess.North, []chess.Direction{chess.West, chess.East}},
		{chess.South, []chess.Direction{chess.West, chess.East}},
		{chess.East, []chess.Direction{chess.South, chess.North}},
		{chess.West, []chess.Direction{chess.South, chess.North}},
	}

	for _, leg := range legs {
		ray := chess.Ray(from, leg.long, 2)
		if len(ray) < 2 {
			continue
		}
		for _, side := range leg.sides {
			if sq, ok := side.Step(ray[1]); ok {
				out = append(out, sq)
			}
		}
	}

	if m == modePlay && rules == RulesStrict {
		out = withoutFriendly(board, out, colour)
	}
	return out
}

// withoutFriendly drops squares occupied by colour.
func withoutFriendly(board *chess.Board, squares []chess.Square, colour chess.Colour) []chess.Square {
	out := squares[:0]
	for _, sq := range squares {
		occupant := board.Get(sq)
		if occupant.IsEmpty() || occupant.Colour != colour {
			out = append(out, sq)
		}
	}
	return out
}
