// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
	NoColour // Neither side; used for "nobody is in check"
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// MarshalText encodes a colour as "white", "black" or "none".
func (c Colour) MarshalText() ([]byte, error) {
	switch c {
	case White:
		return []byte("white"), nil
	case Black:
		return []byte("black"), nil
	case NoColour:
		return []byte("none"), nil
	}
	return nil, fmt.Errorf("unknown colour %d", int(c))
}

// UnmarshalText decodes the output of MarshalText.
func (c *Colour) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white", "White", "w":
		*c = White
	case "black", "Black", "b":
		*c = Black
	case "none", "":
		*c = NoColour
	default:
		return fmt.Errorf("unknown colour %q", text)
	}
	return nil
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns the lower-case name of a kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a FEN/SAN letter of either case to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoKind
}

// MarshalText encodes a kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < NoKind || k >= NumKinds {
		return nil, fmt.Errorf("unknown piece kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind by name.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown piece kind %q", text)
}

// Piece is a coloured piece. The zero value is Empty.
type Piece struct {
	Kind   Kind   `json:"piece"`
	Colour Colour `json:"color"`
}

// Empty is the absence of a piece.
var Empty = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether p is the absence of a piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Valid reports whether p is a white or black pawn..king.
func (p Piece) Valid() bool {
	return p.Kind > NoKind && p.Kind < NumKinds && (p.Colour == White || p.Colour == Black)
}

// String returns e.g. "white rook", or "empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	if p.Colour == White {
		return "white " + p.Kind.String()
	}
	return "black " + p.Kind.String()
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return ' '
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromLetter converts a FEN character to a piece, or Empty.
func PieceFromLetter(c byte) Piece {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return Empty
	}
	if c >= 'a' && c <= 'z' {
		return B(kind)
	}
	return W(kind)
}

// PawnStartRow returns the row on which the colour's pawns start.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return 2
	}
	return BoardSize - 1
}
