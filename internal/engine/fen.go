package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// MaxFullmove bounds the FEN fullmove field so the ply count cannot overflow.
const MaxFullmove = 1 << 20

// Position is a board together with the turn bookkeeping a FEN carries.
type Position struct {
	Board      *chess.Board
	SideToMove chess.Colour
	// MoveCount is the number of plies played. A FEN stores the full-move
	// number, so the count is reconstructed as 2*(fullmove-1), plus one when
	// Black is to move.
	MoveCount uint
}

// ParseFEN creates a position from a FEN string. Castling, en passant and
// the halfmove clock are accepted but not used by these rules.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := Position{Board: chess.NewBoard(), SideToMove: chess.White}

	if err := parsePiecePositions(pos.Board, parts[0]); err != nil {
		return Position{}, err
	}

	if err := parseSideToMove(&pos, parts); err != nil {
		return Position{}, err
	}

	if err := parseFullmove(&pos, parts); err != nil {
		return Position{}, err
	}

	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("want %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, rankText := range ranks {
		row := chess.BoardSize - i
		col := 1
		for _, c := range []byte(rankText) {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece := chess.PieceFromLetter(c)
				if piece.IsEmpty() {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				sq, err := chess.SquareAt(row, col)
				if err != nil {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}
				_ = board.Place(piece, sq)
				col++
			}
		}
		if col != chess.BoardSize+1 {
			return fmt.Errorf("rank %d has %d columns: %w", row, col-1, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.SideToMove = chess.White
	case "b":
		pos.SideToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseFullmove reads the sixth field and converts it to a ply count.
func parseFullmove(pos *Position, parts []string) error {
	fullmove := 1
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 || n > MaxFullmove {
			return fmt.Errorf("invalid fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		fullmove = n
	}
	pos.MoveCount = uint(2 * (fullmove - 1))
	if pos.SideToMove == chess.Black {
		pos.MoveCount++
	}
	return nil
}

// FormatFEN converts a position to a FEN string.
func FormatFEN(pos Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos.Board)
	sb.WriteByte(' ')
	if pos.SideToMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	// No castling or en passant in these rules.
	fmt.Fprintf(&sb, " - - 0 %d", pos.MoveCount/2+1)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize; row >= 1; row-- {
		emptyCount := 0
		for col := 1; col <= chess.BoardSize; col++ {
			sq, _ := chess.SquareAt(row, col)
			piece := board.Get(sq)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 1 {
			sb.WriteByte('/')
		}
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
