package config

import (
	"io"

	"github.com/lgbarn/chessrules/internal/engine"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithRules sets the rule set.
func (b *ConfigBuilder) WithRules(rules engine.RuleSet) *ConfigBuilder {
	b.cfg.Game.Rules = rules
	return b
}

// WithHistoryLimit caps the undo stack.
func (b *ConfigBuilder) WithHistoryLimit(limit int) *ConfigBuilder {
	b.cfg.Game.HistoryLimit = limit
	return b
}

// WithDatabaseDir sets the snapshot database directory.
func (b *ConfigBuilder) WithDatabaseDir(dir string) *ConfigBuilder {
	b.cfg.Store.Dir = dir
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
