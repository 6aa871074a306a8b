// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
)

var (
	// Starting position
	fenPosition = flag.String("fen", "", "Start from this FEN position instead of the standard layout")
	rulesName   = flag.String("rules", "strict", "Movement rules: strict or legacy")

	// Snapshot database
	dbDir      = flag.String("db", "", "Snapshot database directory")
	syncWrites = flag.Bool("sync", false, "Flush every snapshot write to disk")
	loadName   = flag.String("load", "", "Restore the named snapshot before play")
	saveName   = flag.String("save", "", "Save the game under this name on exit")
	listSaved  = flag.Bool("list", false, "List saved snapshots and exit")

	// Batch play
	clicks     = flag.String("select", "", "Comma-separated squares to click in order (e.g. 'e2,e4' or '12,28')")
	printState = flag.Bool("print", false, "Print the board instead of opening the terminal view")
	jsonOutput = flag.Bool("json", false, "Print the state as JSON")
	trace      = flag.Bool("trace", false, "Print the state after every click")
	noCoords   = flag.Bool("nocoords", false, "Omit file letters and rank numbers from diagrams")

	// Position survey
	surveyFile = flag.String("survey", "", "Survey every FEN line in this file ('-' for stdin) and exit")
	workers    = flag.Int("workers", 0, "Number of survey workers (0 = auto-detect based on CPU cores)")

	// Undo
	historyLimit = flag.Int("history", 0, "Maximum moves kept for undo (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("verbose", false, "Log every move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	applyStoreFlags(cfg)
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyGameFlags configures the rule set and undo depth.
func applyGameFlags(cfg *config.Config) error {
	rules, err := config.ParseRules(*rulesName)
	if err != nil {
		return err
	}
	cfg.Game.Rules = rules
	cfg.Game.HistoryLimit = *historyLimit
	return nil
}

// applyStoreFlags configures the snapshot database.
func applyStoreFlags(cfg *config.Config) {
	cfg.Store.Dir = *dbDir
	cfg.Store.SyncWrites = *syncWrites
}

// applyOutputFlags configures diagram and JSON output.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSON = *jsonOutput
	cfg.Output.Coordinates = !*noCoords
}

// batchMode reports whether the game runs without the terminal view.
func batchMode() bool {
	return *printState || *jsonOutput || *trace || *clicks != "" || *listSaved || *surveyFile != ""
}

// needsStore reports whether any flag touches the snapshot database.
func needsStore() bool {
	return *loadName != "" || *saveName != "" || *listSaved
}

// parseClicks splits a click list on commas or whitespace. Each entry is an
// algebraic name or a numeric square id.
func parseClicks(text string) ([]chess.Square, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	squares := make([]chess.Square, 0, len(fields))
	for i, field := range fields {
		sq, err := chess.ParseSquare(strings.ToLower(field))
		if err != nil {
			return nil, fmt.Errorf("click %d: %w", i+1, err)
		}
		squares = append(squares, sq)
	}
	return squares, nil
}
