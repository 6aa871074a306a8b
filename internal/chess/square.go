package chess

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Square identifies a board cell, 1..64, row-major from a1.
// row = ceil(id/8), column = ((id-1) mod 8) + 1.
type Square int

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	ColBase = 'a'
	RowBase = '1'
)

// Square bounds.
const (
	NoSquare Square = 0
	FirstSq  Square = 1
	LastSq   Square = NumSquares
)

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= FirstSq && s <= LastSq
}

// Row returns the 1-based row of a valid square.
func (s Square) Row() int {
	return (int(s)-1)/BoardSize + 1
}

// Column returns the 1-based column of a valid square.
func (s Square) Column() int {
	return (int(s)-1)%BoardSize + 1
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.Column() - 1), byte(RowBase + s.Row() - 1)})
}

// RowColumn converts a square to its row and column.
func RowColumn(s Square) (row, col int, err error) {
	if !s.Valid() {
		return 0, 0, &errors.SquareError{Err: errors.ErrOutOfRange, Op: "row column", Square: int(s)}
	}
	return s.Row(), s.Column(), nil
}

// SquareAt converts a row and column (both 1..8) to a square.
func SquareAt(row, col int) (Square, error) {
	if !onBoard(row, col) {
		return NoSquare, fmt.Errorf("row %d column %d: %w", row, col, errors.ErrOutOfRange)
	}
	return squareAt(row, col), nil
}

func squareAt(row, col int) Square {
	return Square((row-1)*BoardSize + col)
}

func onBoard(row, col int) bool {
	return row >= 1 && row <= BoardSize && col >= 1 && col <= BoardSize
}

// ParseSquare accepts an algebraic name ("e4") or a numeric id ("28").
func ParseSquare(text string) (Square, error) {
	if len(text) == 2 && text[0] >= 'a' && text[0] <= 'h' && text[1] >= '1' && text[1] <= '8' {
		return squareAt(int(text[1]-RowBase)+1, int(text[0]-ColBase)+1), nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrOutOfRange)
	}
	s := Square(n)
	if !s.Valid() {
		return NoSquare, &errors.SquareError{Err: errors.ErrOutOfRange, Op: "parse", Square: n}
	}
	return s, nil
}
