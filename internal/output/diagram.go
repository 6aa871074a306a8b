// Package output renders game state as text diagrams and JSON documents.
package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/game"
)

// Cell markers. A square is three characters wide: the piece letter (or
// '.') between two markers.
const (
	markSelected = '['
	markPlayable = '*'
	markKillable = 'x'
	markChecked  = '!'
)

// Diagram writes the board with rank 8 at the top. Highlighted squares are
// marked: [R] selected, *.* playable, xpx killable, !k! checked king.
func Diagram(w io.Writer, board *chess.Board, h game.Highlights, coordinates bool) error {
	bw := bufio.NewWriter(w)
	marks := markSquares(h)

	for row := chess.BoardSize; row >= 1; row-- {
		if coordinates {
			bw.WriteByte(byte(chess.RowBase + row - 1))
			bw.WriteByte(' ')
		}
		for col := 1; col <= chess.BoardSize; col++ {
			sq, _ := chess.SquareAt(row, col)
			writeCell(bw, board.Get(sq), marks[sq])
		}
		bw.WriteByte('\n')
	}

	if coordinates {
		bw.WriteString("  ")
		for col := 0; col < chess.BoardSize; col++ {
			bw.WriteByte(' ')
			bw.WriteByte(byte(chess.ColBase + col))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func markSquares(h game.Highlights) map[chess.Square]byte {
	marks := make(map[chess.Square]byte)
	for _, sq := range h.Playable {
		marks[sq] = markPlayable
	}
	for _, sq := range h.Killable {
		marks[sq] = markKillable
	}
	if h.Checked != chess.NoSquare {
		marks[h.Checked] = markChecked
	}
	if h.Selected != chess.NoSquare {
		marks[h.Selected] = markSelected
	}
	return marks
}

func writeCell(bw *bufio.Writer, piece chess.Piece, mark byte) {
	letter := byte('.')
	if !piece.IsEmpty() {
		letter = piece.Letter()
	}
	switch mark {
	case 0:
		bw.WriteByte(' ')
		bw.WriteByte(letter)
		bw.WriteByte(' ')
	case markSelected:
		bw.WriteByte('[')
		bw.WriteByte(letter)
		bw.WriteByte(']')
	default:
		bw.WriteByte(mark)
		bw.WriteByte(letter)
		bw.WriteByte(mark)
	}
}
