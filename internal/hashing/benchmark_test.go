package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
)

var benchFENPositions = map[string]string{
	"Initial": engine.InitialFEN,
	"Midgame": "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"Endgame": "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
}

func BenchmarkFingerprint(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			pos, _ := engine.ParseFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Fingerprint(pos.Board, pos.SideToMove)
			}
		})
	}
}

func BenchmarkPositionTracker(b *testing.B) {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	fp := Fingerprint(board, chess.White)
	tracker := NewPositionTracker()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tracker.Add(fp)
		tracker.Remove(fp)
	}
}
