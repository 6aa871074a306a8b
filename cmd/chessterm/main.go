// chessterm is a two-player chess board driven by square selection, in the
// terminal or as a batch replay of clicks.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/game"
	"github.com/lgbarn/chessrules/internal/output"
	"github.com/lgbarn/chessrules/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessterm version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx := context.Background()
	st := openStore(cfg)
	if st != nil {
		defer st.Close()
	}

	if *listSaved {
		listSnapshots(ctx, st, cfg)
		return
	}

	if *surveyFile != "" {
		if err := runSurveyFile(*surveyFile, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	g := setupGame(ctx, cfg, st)

	var err error
	if batchMode() {
		err = runBatch(g, cfg)
	} else {
		err = runView(ctx, g, st, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *saveName != "" {
		if err := st.Save(ctx, *saveName, g.Snapshot()); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", *saveName, err)
			os.Exit(1)
		}
		cfg.Logf(1, "saved %s at ply %d", *saveName, g.MoveCount())
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}
}

// openStore opens the snapshot database when a flag needs it.
func openStore(cfg *config.Config) *store.Store {
	if !needsStore() && cfg.Store.Dir == "" {
		return nil
	}
	if cfg.Store.Dir == "" {
		fmt.Fprintf(os.Stderr, "Error: -load, -save and -list need a database directory (-db)\n")
		os.Exit(2)
	}

	st, err := store.Open(cfg.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database %s: %v\n", cfg.Store.Dir, err)
		os.Exit(1)
	}
	return st
}

// listSnapshots prints every saved snapshot name.
func listSnapshots(ctx context.Context, st *store.Store, cfg *config.Config) {
	names, err := st.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing snapshots: %v\n", err)
		os.Exit(1)
	}
	for _, name := range names {
		fmt.Fprintln(cfg.OutputFile, name)
	}
}

// setupGame starts a game from a snapshot, a FEN position or the standard
// layout, in that order of preference.
func setupGame(ctx context.Context, cfg *config.Config, st *store.Store) *game.Game {
	g := game.New(cfg)

	switch {
	case *loadName != "":
		rec, err := st.Load(ctx, *loadName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *loadName, err)
			os.Exit(1)
		}
		if err := g.Restore(rec.Snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Error restoring %s: %v\n", *loadName, err)
			os.Exit(1)
		}
		cfg.Logf(1, "restored %s saved %s", rec.Name, rec.SavedAt.Format("2006-01-02 15:04"))
	case *fenPosition != "":
		if err := g.LoadFEN(*fenPosition); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	default:
		g.StartGame()
	}
	return g
}

// runBatch replays the -select clicks and prints the resulting state.
func runBatch(g *game.Game, cfg *config.Config) error {
	squares, err := parseClicks(*clicks)
	if err != nil {
		return err
	}

	writer := output.NewStateWriter(cfg.OutputFile, cfg)
	defer writer.Close()

	for _, sq := range squares {
		res := g.SelectSquare(sq)
		cfg.Logf(2, "click %s: %s", sq, res.Outcome)
		if *trace {
			if err := writer.WriteState(g); err != nil {
				return err
			}
		}
	}
	if !*trace || len(squares) == 0 {
		if err := writer.WriteState(g); err != nil {
			return err
		}
	}
	return writer.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessterm [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess board played by selecting squares.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nTerminal keys:\n")
	fmt.Fprintf(os.Stderr, "  click  select a piece, then a highlighted square to move\n")
	fmt.Fprintf(os.Stderr, "  u      undo the last move\n")
	fmt.Fprintf(os.Stderr, "  s      save to the -save name (needs -db)\n")
	fmt.Fprintf(os.Stderr, "  n      new game\n")
	fmt.Fprintf(os.Stderr, "  q      quit\n")
}
