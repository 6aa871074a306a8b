package game

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/hashing"
)

// Snapshot is the persistent form of a game: placement, turn state and the
// undoable history. Fingerprint covers the placement and side to move.
type Snapshot struct {
	Pieces      []chess.Placement `json:"pieces"`
	State       State             `json:"state"`
	History     []MoveRecord      `json:"history,omitempty"`
	Fingerprint uint64            `json:"fingerprint"`
}

// Snapshot captures the current game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Pieces:      g.board.Occupied(),
		State:       g.state,
		History:     g.History(),
		Fingerprint: g.Fingerprint(),
	}
}

// Board rebuilds the snapshot's board.
func (s Snapshot) Board() (*chess.Board, error) {
	board := chess.NewBoard()
	if err := board.Setup(s.Pieces); err != nil {
		return nil, fmt.Errorf("snapshot placement: %w: %w", err, errors.ErrCorruptSnapshot)
	}
	return board, nil
}

// Verify checks the fingerprint against the placement and side to move.
func (s Snapshot) Verify() error {
	board, err := s.Board()
	if err != nil {
		return err
	}
	if got := hashing.Fingerprint(board, s.State.SideToMove); got != s.Fingerprint {
		return fmt.Errorf("fingerprint %016x, stored %016x: %w", got, s.Fingerprint, errors.ErrCorruptSnapshot)
	}
	return nil
}

// Restore replaces the game with a verified snapshot. The undo stack is
// rebuilt by walking the history backwards from the stored board, so a
// restored game can take its moves back. On error the game is unchanged.
func (g *Game) Restore(s Snapshot) error {
	if err := s.Verify(); err != nil {
		return err
	}
	board, _ := s.Board()

	history, positions, err := rewind(board.Copy(), s.State, s.History)
	if err != nil {
		return err
	}

	g.board = board
	g.state = s.State
	g.selected = nil
	g.history = history
	g.trimHistory()
	g.positions.Reset()
	for _, fp := range positions {
		g.positions.Add(fp)
	}
	g.positions.Add(g.Fingerprint())
	g.cfg.Logf(2, "restored game at ply %d with %d undoable moves", s.State.MoveCount, len(g.history))
	return nil
}

// rewind takes back records from board, newest first, and returns the
// undo stack oldest first together with the fingerprints of the earlier
// positions. Check state before the first record is not stored and comes
// back as NoColour.
func rewind(board *chess.Board, final State, records []MoveRecord) ([]undoRecord, []uint64, error) {
	history := make([]undoRecord, len(records))
	positions := make([]uint64, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		if board.Get(rec.To) != rec.Piece || !board.Get(rec.From).IsEmpty() {
			return nil, nil, fmt.Errorf("history ply %d: %s not on %s: %w", rec.Ply, rec.Piece, rec.To, errors.ErrCorruptSnapshot)
		}
		if _, err := board.Move(rec.To, rec.From); err != nil {
			return nil, nil, fmt.Errorf("history ply %d: %v: %w", rec.Ply, err, errors.ErrCorruptSnapshot)
		}
		if rec.IsCapture() {
			_ = board.Place(rec.Captured, rec.To)
		}

		before := State{SideToMove: rec.Piece.Colour, MoveCount: rec.Ply - 1, Checked: chess.NoColour}
		if i > 0 {
			before.Checked = records[i-1].Check
		}
		history[i] = undoRecord{board: board.SaveState(), state: before, record: rec}
		positions = append(positions, hashing.Fingerprint(board, before.SideToMove))
	}
	if len(records) > 0 && records[len(records)-1].Ply != final.MoveCount {
		return nil, nil, fmt.Errorf("history ends at ply %d, state at %d: %w",
			records[len(records)-1].Ply, final.MoveCount, errors.ErrCorruptSnapshot)
	}
	return history, positions, nil
}

// LoadFEN replaces the game with the position described by fen. The move
// history is cleared.
func (g *Game) LoadFEN(fen string) error {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return err
	}
	g.board = pos.Board
	g.reset(State{SideToMove: pos.SideToMove, MoveCount: pos.MoveCount})
	g.cfg.Logf(2, "loaded %s", fen)
	return nil
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return engine.FormatFEN(engine.Position{
		Board:      g.board,
		SideToMove: g.state.SideToMove,
		MoveCount:  g.state.MoveCount,
	})
}
