package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
)

// MustBoard builds a board from piece specs such as "Ra1" (white rook on a1)
// or "ke8" (black king on e8): a FEN letter followed by a square name or id.
// It calls t.Fatal on a malformed spec.
func MustBoard(t testing.TB, specs ...string) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	if err := board.Setup(MustPlacements(t, specs...)); err != nil {
		t.Fatalf("setting up board %v: %v", specs, err)
	}
	return board
}

// MustPlacements parses piece specs in the MustBoard format.
func MustPlacements(t testing.TB, specs ...string) []chess.Placement {
	t.Helper()
	placements := make([]chess.Placement, 0, len(specs))
	for _, spec := range specs {
		if len(spec) < 2 {
			t.Fatalf("bad piece spec %q", spec)
		}
		piece := chess.PieceFromLetter(spec[0])
		if piece.IsEmpty() {
			t.Fatalf("bad piece letter in %q", spec)
		}
		sq := MustSquare(t, spec[1:])
		placements = append(placements, chess.Placement{Colour: piece.Colour, Kind: piece.Kind, Square: sq})
	}
	return placements
}

// MustSquare parses a square name ("e4") or id ("29").
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

// Squares parses several square names at once.
func Squares(t testing.TB, names ...string) []chess.Square {
	t.Helper()
	out := make([]chess.Square, 0, len(names))
	for _, name := range names {
		out = append(out, MustSquare(t, name))
	}
	return out
}
