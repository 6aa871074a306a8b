package game

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/hashing"
)

// Game owns a board and its turn state. It is not safe for concurrent use.
type Game struct {
	cfg   *config.Config
	board *chess.Board
	state State

	selected *selection
	history  []undoRecord

	positions *hashing.PositionTracker
}

// undoRecord holds everything needed to take a move back.
type undoRecord struct {
	board  chess.BoardState
	state  State
	record MoveRecord
}

// New creates a game with an empty board. Call StartGame, StartCustomGame
// or LoadFEN before selecting squares. A nil cfg uses the defaults.
func New(cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Game{
		cfg:       cfg,
		board:     chess.NewBoard(),
		state:     initialState(),
		positions: hashing.NewPositionTracker(),
	}
}

// StartGame sets up the standard layout with White to move.
func (g *Game) StartGame() {
	g.board.SetupInitialPosition()
	g.reset(initialState())
	g.cfg.Logf(2, "new game")
}

// StartCustomGame places an arbitrary layout with White to move. Squares
// and pieces are validated, not the position itself; on error the game is
// unchanged.
func (g *Game) StartCustomGame(placements []chess.Placement) error {
	if err := g.board.Setup(placements); err != nil {
		return errors.Wrap(err, "custom game")
	}
	g.reset(initialState())
	g.cfg.Logf(2, "custom game with %d pieces", len(placements))
	return nil
}

// reset starts a fresh history from the current board.
func (g *Game) reset(state State) {
	g.state = state
	g.state.Checked = g.checkedSideToMove()
	g.selected = nil
	g.history = nil
	g.positions.Reset()
	g.positions.Add(g.Fingerprint())
}

// checkedSideToMove returns the side to move if its king is attacked.
// Boards without that king are never in check.
func (g *Game) checkedSideToMove() chess.Colour {
	inCheck, err := engine.IsInCheck(g.board, g.state.SideToMove)
	if err != nil || !inCheck {
		return chess.NoColour
	}
	return g.state.SideToMove
}

// SelectSquare handles a click on sq.
//
// A piece of the side to move becomes the selection (only the king while
// that side is in check) and its destinations are returned. With a piece
// selected, clicking one of its destinations plays the move. Any other
// click, including the selected square itself, clears the selection.
func (g *Game) SelectSquare(sq chess.Square) Result {
	piece := g.board.Get(sq)
	reselect := g.selected == nil || g.selected.square != sq
	if g.selectable(piece) && reselect {
		return g.selectPiece(sq)
	}

	if g.selected != nil && g.selected.square != sq && engine.Contains(g.selected.destinations, sq) {
		return g.move(sq)
	}

	g.selected = nil
	return Result{Outcome: OutcomeDeselected}
}

func (g *Game) selectable(piece chess.Piece) bool {
	if piece.IsEmpty() || piece.Colour != g.state.SideToMove {
		return false
	}
	return !g.state.InCheck() || piece.Kind == chess.King
}

func (g *Game) selectPiece(sq chess.Square) Result {
	dests, err := engine.Destinations(g.board, sq, g.cfg.Game.Rules)
	if err != nil {
		// sq was checked to hold a piece of the side to move.
		g.cfg.Logf(1, "destinations of %s: %v", sq, err)
		g.selected = nil
		return Result{Outcome: OutcomeDeselected}
	}
	dests = engine.Dedupe(dests)
	g.selected = &selection{square: sq, destinations: dests}
	g.cfg.Logf(2, "%s selected %v on %s: %d destinations", g.state.SideToMove, g.board.Get(sq), sq, len(dests))
	return Result{Outcome: OutcomeSelected, Destinations: dests}
}

// move plays the selected piece to to, then detects check, flips the side
// to move and bumps the move count.
func (g *Game) move(to chess.Square) Result {
	from := g.selected.square
	g.selected = nil

	undo := undoRecord{board: g.board.SaveState(), state: g.state}
	piece := g.board.Get(from)
	captured, err := g.board.Move(from, to)
	if err != nil {
		g.cfg.Logf(1, "move %s-%s: %v", from, to, err)
		return Result{Outcome: OutcomeDeselected}
	}

	mover := g.state.SideToMove
	checked, err := engine.CheckedAfterMove(g.board, mover)
	if err != nil {
		// No enemy king on a custom board.
		checked = chess.NoColour
	}
	g.state = State{
		SideToMove: mover.Opposite(),
		MoveCount:  g.state.MoveCount + 1,
		Checked:    checked,
	}

	undo.record = MoveRecord{
		Move:  chess.Move{From: from, To: to, Piece: piece, Captured: captured},
		Ply:   g.state.MoveCount,
		Check: checked,
	}
	g.pushHistory(undo)
	repeated := g.positions.Add(g.Fingerprint())

	g.cfg.Logf(2, "%d. %s plays %s", g.state.MoveCount, mover, undo.record)
	if checked != chess.NoColour {
		g.cfg.Logf(2, "%s is in check", checked)
	}
	if repeated > 1 {
		g.cfg.Logf(2, "position seen %d times", repeated)
	}

	record := undo.record
	return Result{Outcome: OutcomeMoved, Move: &record}
}

func (g *Game) pushHistory(undo undoRecord) {
	g.history = append(g.history, undo)
	g.trimHistory()
}

// trimHistory drops the oldest undo records beyond the configured limit.
func (g *Game) trimHistory() {
	if limit := g.cfg.Game.HistoryLimit; limit > 0 && len(g.history) > limit {
		g.history = append(g.history[:0], g.history[len(g.history)-limit:]...)
	}
}

// Undo takes back the last move, restoring the board and turn state.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return errors.ErrNothingToUndo
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.positions.Remove(g.Fingerprint())
	g.board.RestoreState(last.board)
	g.state = last.state
	g.selected = nil
	g.cfg.Logf(2, "undo %s", last.record)
	return nil
}

// History returns the moves that can still be undone, oldest first.
func (g *Game) History() []MoveRecord {
	out := make([]MoveRecord, len(g.history))
	for i, h := range g.history {
		out[i] = h.record
	}
	return out
}

// PieceAt returns the piece on sq.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, error) {
	return g.board.PieceAt(sq)
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// State returns the current turn state.
func (g *Game) State() State {
	return g.state
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() chess.Colour {
	return g.state.SideToMove
}

// CheckedPlayer returns the colour in check, or NoColour.
func (g *Game) CheckedPlayer() chess.Colour {
	return g.state.Checked
}

// MoveCount returns the number of plies played.
func (g *Game) MoveCount() uint {
	return g.state.MoveCount
}

// Rules returns the active rule set.
func (g *Game) Rules() engine.RuleSet {
	return g.cfg.Game.Rules
}

// Selected returns the selected square and its destinations.
func (g *Game) Selected() (chess.Square, []chess.Square, bool) {
	if g.selected == nil {
		return chess.NoSquare, nil, false
	}
	return g.selected.square, append([]chess.Square(nil), g.selected.destinations...), true
}

// Fingerprint returns the Zobrist hash of the position and side to move.
func (g *Game) Fingerprint() uint64 {
	return hashing.Fingerprint(g.board, g.state.SideToMove)
}

// Repetitions returns how often the current position has occurred.
func (g *Game) Repetitions() int {
	return g.positions.Count(g.Fingerprint())
}

// Highlights splits the selection's destinations into empty and
// enemy-occupied squares and locates the checked king.
func (g *Game) Highlights() Highlights {
	var h Highlights
	if g.selected != nil {
		h.Selected = g.selected.square
		for _, sq := range g.selected.destinations {
			if g.board.Get(sq).IsEmpty() {
				h.Playable = append(h.Playable, sq)
			} else {
				h.Killable = append(h.Killable, sq)
			}
		}
	}
	if g.state.Checked != chess.NoColour {
		if sq, err := g.board.KingSquare(g.state.Checked); err == nil {
			h.Checked = sq
		}
	}
	return h
}
