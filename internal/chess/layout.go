package chess

import "github.com/lgbarn/chessrules/internal/errors"

var backRank = []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingLayout returns the standard 32-piece layout: White on squares
// 1-16, Black mirrored on 49-64.
func StartingLayout() []Placement {
	layout := make([]Placement, 0, 32)
	for col := 1; col <= BoardSize; col++ {
		kind := backRank[col-1]
		layout = append(layout,
			Placement{Colour: White, Kind: kind, Square: squareAt(1, col)},
			Placement{Colour: White, Kind: Pawn, Square: squareAt(2, col)},
			Placement{Colour: Black, Kind: Pawn, Square: squareAt(7, col)},
			Placement{Colour: Black, Kind: kind, Square: squareAt(8, col)},
		)
	}
	return layout
}

// SetupInitialPosition clears the board and sets up the starting position.
func (b *Board) SetupInitialPosition() {
	// The starting layout only holds valid squares.
	_ = b.Setup(StartingLayout())
}

// Setup clears the board and places every entry. Each entry needs a valid
// square and a real piece; a bad entry leaves the board untouched.
func (b *Board) Setup(placements []Placement) error {
	for _, pl := range placements {
		if !pl.Square.Valid() {
			return &errors.SquareError{Err: errors.ErrInvalidSquare, Op: "setup", Square: int(pl.Square)}
		}
		if !pl.Piece().Valid() {
			return &errors.SquareError{Err: errors.ErrInvalidPiece, Op: "setup", Square: int(pl.Square)}
		}
	}
	b.Clear()
	for _, pl := range placements {
		b.squares[pl.Square-1] = pl.Piece()
	}
	return nil
}
