package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
)

// GameConfig holds settings for the turn controller.
type GameConfig struct {
	// Rules selects strict or legacy destination generation.
	Rules engine.RuleSet

	// HistoryLimit caps the undo stack; 0 keeps every move.
	HistoryLimit int
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{Rules: engine.RulesStrict}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.Rules != engine.RulesStrict && g.Rules != engine.RulesLegacy {
		return fmt.Errorf("unknown rule set %s: %w", g.Rules, errors.ErrInvalidConfig)
	}
	if g.HistoryLimit < 0 {
		return fmt.Errorf("negative history limit %d: %w", g.HistoryLimit, errors.ErrInvalidConfig)
	}
	return nil
}

// ParseRules maps a command-line name to a rule set.
func ParseRules(name string) (engine.RuleSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "strict":
		return engine.RulesStrict, nil
	case "legacy":
		return engine.RulesLegacy, nil
	}
	return engine.RulesStrict, fmt.Errorf("unknown rule set %q: %w", name, errors.ErrInvalidConfig)
}
