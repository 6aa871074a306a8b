// Package engine provides chess move generation and check detection.
package engine

import "fmt"

// RuleSet selects how destination sets are generated.
type RuleSet int

const (
	// RulesStrict never offers friendly-occupied squares, blocks pawn pushes,
	// keeps the king off every attacked square and drops moves that leave
	// the mover's own king attacked.
	RulesStrict RuleSet = iota

	// RulesLegacy reproduces the historical generator: knight and pawn sets
	// are not filtered by friendly occupancy, pawn pushes ignore blockers,
	// the king only avoids rook/bishop/queen lines and self-check is allowed.
	RulesLegacy
)

// String returns the name used on the command line.
func (r RuleSet) String() string {
	switch r {
	case RulesStrict:
		return "strict"
	case RulesLegacy:
		return "legacy"
	}
	return fmt.Sprintf("RuleSet(%d)", int(r))
}

// mode distinguishes legal-destination generation from attack maps.
type mode int

const (
	// modePlay produces destinations for the piece's owner.
	modePlay mode = iota
	// modeAttack produces the squares a piece attacks, whoever stands there,
	// independent of whose turn it is.
	modeAttack
)
