package engine

import (
	"strings"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantSide  chess.Colour
		wantCount uint
		checkFn   func(*chess.Board) bool
	}{
		{
			name:      "initial position",
			fen:       InitialFEN,
			wantSide:  chess.White,
			wantCount: 0,
			checkFn: func(b *chess.Board) bool {
				return b.Get(5) == chess.W(chess.King) &&
					b.Get(61) == chess.B(chess.King) &&
					b.Get(13) == chess.W(chess.Pawn) &&
					b.Get(53) == chess.B(chess.Pawn)
			},
		},
		{
			name:      "after 1.e4",
			fen:       "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			wantSide:  chess.Black,
			wantCount: 1,
			checkFn: func(b *chess.Board) bool {
				return b.Get(29) == chess.W(chess.Pawn) && b.Get(13).IsEmpty()
			},
		},
		{
			name:      "sicilian defense",
			fen:       "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			wantSide:  chess.White,
			wantCount: 2,
			checkFn: func(b *chess.Board) bool {
				return b.Get(35) == chess.B(chess.Pawn) && b.Get(29) == chess.W(chess.Pawn)
			},
		},
		{
			name:      "fullmove at limit",
			fen:       "8/8/8/8/8/8/8/R7 b - - 0 1048576",
			wantSide:  chess.Black,
			wantCount: 2*(MaxFullmove-1) + 1,
			checkFn: func(b *chess.Board) bool {
				return b.Get(1) == chess.W(chess.Rook)
			},
		},
		{
			name:      "placement only",
			fen:       "8/8/8/8/8/8/8/R7",
			wantSide:  chess.White,
			wantCount: 0,
			checkFn: func(b *chess.Board) bool {
				return b.Get(1) == chess.W(chess.Rook) && len(b.Occupied()) == 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN() error = %v", err)
			}
			testutil.AssertEqual(t, pos.SideToMove, tt.wantSide, "side to move")
			testutil.AssertEqual(t, pos.MoveCount, tt.wantCount, "move count")
			if !tt.checkFn(pos.Board) {
				t.Errorf("ParseFEN() board check failed")
			}
		})
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w - - 0 1"},
		{"bad side", InitialFEN[:strings.Index(InitialFEN, " ")] + " x - - 0 1"},
		{"bad fullmove", "8/8/8/8/8/8/8/8 w - - 0 zero"},
		{"zero fullmove", "8/8/8/8/8/8/8/8 w - - 0 0"},
		{"fullmove past limit", "8/8/8/8/8/8/8/8 w - - 0 1048577"},
		{"fullmove overflow", "8/8/8/8/8/8/8/8 b - - 0 9223372036854775807"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN, "ParseFEN(%q)", tt.fen)
		})
	}
}

func TestFormatFEN(t *testing.T) {
	testutil.AssertEqual(t, FormatFEN(Position{Board: NewInitialBoard(), SideToMove: chess.White}), InitialFEN)

	board := testutil.MustBoard(t, "Ra1", "ke8")
	got := FormatFEN(Position{Board: board, SideToMove: chess.Black, MoveCount: 5})
	testutil.AssertEqual(t, got, "4k3/8/8/8/8/8/8/R7 b - - 0 3")
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 0 4",
		"8/5k2/8/8/8/8/5K2/4R3 b - - 0 41",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		testutil.AssertNoError(t, err, fen)
		testutil.AssertEqual(t, FormatFEN(pos), fen)
	}
}

var notnilKinds = map[nchess.PieceType]chess.Kind{
	nchess.King:   chess.King,
	nchess.Queen:  chess.Queen,
	nchess.Rook:   chess.Rook,
	nchess.Bishop: chess.Bishop,
	nchess.Knight: chess.Knight,
	nchess.Pawn:   chess.Pawn,
}

// TestFENMatchesReferenceParser checks square numbering and piece decoding
// against an independent FEN implementation.
func TestFENMatchesReferenceParser(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos, err := ParseFEN(fen)
			testutil.AssertNoError(t, err)

			opt, err := nchess.FEN(fen)
			if err != nil {
				t.Fatalf("reference parser rejected %q: %v", fen, err)
			}
			ref := nchess.NewGame(opt).Position().Board()

			want := make(map[chess.Square]chess.Piece)
			for sq, p := range ref.SquareMap() {
				colour := chess.Black
				if p.Color() == nchess.White {
					colour = chess.White
				}
				want[chess.Square(int(sq)+1)] = chess.Piece{Kind: notnilKinds[p.Type()], Colour: colour}
			}

			got := make(map[chess.Square]chess.Piece)
			for _, pl := range pos.Board.Occupied() {
				got[pl.Square] = pl.Piece()
			}
			testutil.AssertEqual(t, got, want)

			placement := FormatFEN(pos)[:strings.Index(FormatFEN(pos), " ")]
			testutil.AssertEqual(t, placement, ref.String(), "placement field")
		})
	}
}
