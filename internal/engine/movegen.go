package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Destinations returns the squares the piece on from may move to under rules.
// The result may contain duplicates; use Dedupe for set semantics.
func Destinations(board *chess.Board, from chess.Square, rules RuleSet) ([]chess.Square, error) {
	piece, err := pieceOn(board, from, "destinations")
	if err != nil {
		return nil, err
	}

	dests := generate(board, from, piece, modePlay, rules)
	if rules == RulesStrict {
		dests = filterSelfCheck(board, from, piece.Colour, dests)
	}
	return dests, nil
}

// Attacks returns the squares the piece on from attacks, whoever occupies
// them and whichever side is to move.
func Attacks(board *chess.Board, from chess.Square) ([]chess.Square, error) {
	piece, err := pieceOn(board, from, "attacks")
	if err != nil {
		return nil, err
	}
	return generate(board, from, piece, modeAttack, RulesStrict), nil
}

func pieceOn(board *chess.Board, from chess.Square, op string) (chess.Piece, error) {
	piece, err := board.PieceAt(from)
	if err != nil {
		return chess.Empty, err
	}
	if piece.IsEmpty() {
		return chess.Empty, &errors.SquareError{Err: errors.ErrEmptySquare, Op: op, Square: int(from)}
	}
	return piece, nil
}

// generate is the single dispatch point over piece kinds.
func generate(board *chess.Board, from chess.Square, piece chess.Piece, m mode, rules RuleSet) []chess.Square {
	switch piece.Kind {
	case chess.Rook:
		return rookSquares(board, from, piece.Colour, m)
	case chess.Bishop:
		return bishopSquares(board, from, piece.Colour, m)
	case chess.Queen:
		return append(rookSquares(board, from, piece.Colour, m), bishopSquares(board, from, piece.Colour, m)...)
	case chess.Knight:
		return knightSquares(board, from, piece.Colour, m, rules)
	case chess.King:
		return kingSquares(board, from, piece.Colour, m, rules)
	case chess.Pawn:
		return pawnSquares(board, from, piece.Colour, m, rules)
	}
	return nil
}
