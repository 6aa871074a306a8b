package chess

import "github.com/lgbarn/chessrules/internal/errors"

// Board maps every square to a piece or Empty. It is the sole owner of
// piece placement; side to move and check state live with the game.
type Board struct {
	// squares[0] is square 1 (a1), squares[63] is square 64 (h8).
	squares [NumSquares]Piece
}

// Placement is a piece standing on a square.
type Placement struct {
	Colour Colour `json:"color"`
	Kind   Kind   `json:"piece"`
	Square Square `json:"square"`
}

// Piece returns the placed piece.
func (p Placement) Piece() Piece {
	return Piece{Kind: p.Kind, Colour: p.Colour}
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the piece on s, or Empty when s is empty or off the board.
func (b *Board) Get(s Square) Piece {
	if !s.Valid() {
		return Empty
	}
	return b.squares[s-1]
}

// PieceAt returns the piece on s.
func (b *Board) PieceAt(s Square) (Piece, error) {
	if !s.Valid() {
		return Empty, &errors.SquareError{Err: errors.ErrOutOfRange, Op: "piece at", Square: int(s)}
	}
	return b.squares[s-1], nil
}

// Place puts piece on s, replacing any occupant.
func (b *Board) Place(piece Piece, s Square) error {
	if !s.Valid() {
		return &errors.SquareError{Err: errors.ErrInvalidSquare, Op: "place", Square: int(s)}
	}
	b.squares[s-1] = piece
	return nil
}

// Remove empties s and returns what stood there.
func (b *Board) Remove(s Square) (Piece, error) {
	if !s.Valid() {
		return Empty, &errors.SquareError{Err: errors.ErrInvalidSquare, Op: "remove", Square: int(s)}
	}
	old := b.squares[s-1]
	b.squares[s-1] = Empty
	return old, nil
}

// Move relocates the piece on from to to, capturing any occupant of to.
// The board is unchanged when an error is returned.
func (b *Board) Move(from, to Square) (captured Piece, err error) {
	if !from.Valid() || !to.Valid() || from == to {
		return Empty, &errors.SquareError{Err: errors.ErrInvalidSquare, Op: "move", Square: int(from), To: int(to)}
	}
	piece := b.squares[from-1]
	if piece.IsEmpty() {
		return Empty, &errors.SquareError{Err: errors.ErrEmptySquare, Op: "move", Square: int(from), To: int(to)}
	}
	captured = b.squares[to-1]
	b.squares[to-1] = piece
	b.squares[from-1] = Empty
	return captured, nil
}

// KingSquare finds the king of the given colour by scanning the board.
func (b *Board) KingSquare(colour Colour) (Square, error) {
	king := Piece{Kind: King, Colour: colour}
	for i, p := range b.squares {
		if p == king {
			return Square(i + 1), nil
		}
	}
	return NoSquare, errors.Wrapf(errors.ErrNoKing, "%s king", colour)
}

// Clear empties every square.
func (b *Board) Clear() {
	b.squares = [NumSquares]Piece{}
}

// Occupied lists every piece on the board in square order.
func (b *Board) Occupied() []Placement {
	var out []Placement
	for i, p := range b.squares {
		if !p.IsEmpty() {
			out = append(out, Placement{Colour: p.Colour, Kind: p.Kind, Square: Square(i + 1)})
		}
	}
	return out
}

// Pieces lists the pieces of one colour in square order.
func (b *Board) Pieces(colour Colour) []Placement {
	var out []Placement
	for _, pl := range b.Occupied() {
		if pl.Colour == colour {
			out = append(out, pl)
		}
	}
	return out
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards hold identical placements.
func (b *Board) Equal(other *Board) bool {
	return other != nil && b.squares == other.squares
}

// BoardState captures the placement for save/restore operations.
// This is cheaper than Copy() when a caller temporarily modifies
// the board and then restores it (e.g., trying a move).
type BoardState struct {
	Squares [NumSquares]Piece
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{Squares: b.squares}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.squares = s.Squares
}
