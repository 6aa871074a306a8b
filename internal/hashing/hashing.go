// Package hashing provides position fingerprints and repetition tracking.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules/internal/chess"
)

// Zobrist keys, one per piece per square plus one for Black to move.
var (
	zobristPiece [2][chess.NumKinds][chess.NumSquares]uint64
	zobristSide  uint64
)

func init() {
	// Fixed seed: fingerprints are persisted with snapshots.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := range zobristPiece {
		for k := range zobristPiece[c] {
			for sq := range zobristPiece[c][k] {
				zobristPiece[c][k][sq] = rnd.Uint64()
			}
		}
	}
	zobristSide = rnd.Uint64()
}

// Fingerprint returns the Zobrist hash of the placement and side to move.
func Fingerprint(board *chess.Board, side chess.Colour) uint64 {
	var key uint64
	for _, pl := range board.Occupied() {
		key ^= zobristPiece[pl.Colour][pl.Kind][pl.Square-1]
	}
	if side == chess.Black {
		key ^= zobristSide
	}
	return key
}

// PositionTracker counts how often each position has occurred in a game.
type PositionTracker struct {
	counts map[uint64]int
}

// NewPositionTracker creates an empty tracker.
func NewPositionTracker() *PositionTracker {
	return &PositionTracker{counts: make(map[uint64]int)}
}

// Add records one occurrence and returns the new count.
func (p *PositionTracker) Add(fingerprint uint64) int {
	p.counts[fingerprint]++
	return p.counts[fingerprint]
}

// Remove forgets one occurrence, as when a move is taken back.
func (p *PositionTracker) Remove(fingerprint uint64) {
	if p.counts[fingerprint] <= 1 {
		delete(p.counts, fingerprint)
		return
	}
	p.counts[fingerprint]--
}

// Count returns how often the position has occurred.
func (p *PositionTracker) Count(fingerprint uint64) int {
	return p.counts[fingerprint]
}

// UniqueCount returns the number of distinct positions seen.
func (p *PositionTracker) UniqueCount() int {
	return len(p.counts)
}

// Reset clears the tracker.
func (p *PositionTracker) Reset() {
	p.counts = make(map[uint64]int)
}
