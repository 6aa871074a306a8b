package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"golang.org/x/exp/slices"
)

// Dedupe returns the squares sorted with duplicates removed.
// The input is not modified.
func Dedupe(squares []chess.Square) []chess.Square {
	out := slices.Clone(squares)
	slices.Sort(out)
	return slices.Compact(out)
}

// Contains reports whether sq is among squares.
func Contains(squares []chess.Square, sq chess.Square) bool {
	return slices.Contains(squares, sq)
}
