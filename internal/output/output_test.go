package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/game"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func quietGame(t *testing.T, specs ...string) *game.Game {
	t.Helper()
	g := game.New(config.NewConfigBuilder().WithVerbosity(0).Build())
	if len(specs) == 0 {
		g.StartGame()
		return g
	}
	if err := g.StartCustomGame(testutil.MustPlacements(t, specs...)); err != nil {
		t.Fatalf("StartCustomGame: %v", err)
	}
	return g
}

func TestDiagramInitialPosition(t *testing.T) {
	g := quietGame(t)
	var buf bytes.Buffer
	testutil.AssertNoError(t, Diagram(&buf, g.Board(), g.Highlights(), false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 8)
	testutil.AssertEqual(t, lines[0], " r  n  b  q  k  b  n  r ", "rank 8 on top")
	testutil.AssertEqual(t, lines[1], strings.Repeat(" p ", 8))
	testutil.AssertEqual(t, lines[4], strings.Repeat(" . ", 8))
	testutil.AssertEqual(t, lines[7], " R  N  B  Q  K  B  N  R ")
}

func TestDiagramHighlights(t *testing.T) {
	g := quietGame(t, "Ra1", "pa3")
	g.SelectSquare(1)

	var buf bytes.Buffer
	testutil.AssertNoError(t, Diagram(&buf, g.Board(), g.Highlights(), true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 9)
	testutil.AssertEqual(t, lines[5], "3 xpx"+strings.Repeat(" . ", 7), "killable")
	testutil.AssertEqual(t, lines[6], "2 *.*"+strings.Repeat(" . ", 7), "playable")
	testutil.AssertEqual(t, lines[7], "1 [R]"+strings.Repeat("*.*", 7), "selected")
	testutil.AssertEqual(t, lines[8], "   a  b  c  d  e  f  g  h ", "file letters")
}

func TestDiagramCheckedKing(t *testing.T) {
	g := quietGame(t, "Ra1", "ke8")
	g.SelectSquare(testutil.MustSquare(t, "a1"))
	g.SelectSquare(testutil.MustSquare(t, "a8"))

	var buf bytes.Buffer
	testutil.AssertNoError(t, Diagram(&buf, g.Board(), g.Highlights(), false))
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	testutil.AssertEqual(t, first, " R "+strings.Repeat(" . ", 3)+"!k!"+strings.Repeat(" . ", 3))
}

func TestStateToJSON(t *testing.T) {
	g := quietGame(t)
	g.SelectSquare(testutil.MustSquare(t, "e2"))
	g.SelectSquare(testutil.MustSquare(t, "e4"))
	g.SelectSquare(testutil.MustSquare(t, "g8"))

	doc := StateToJSON(g)
	testutil.AssertEqual(t, doc.SideToMove, chess.Black)
	testutil.AssertEqual(t, doc.MoveCount, uint(1))
	testutil.AssertEqual(t, doc.Checked, chess.NoColour)
	testutil.AssertEqual(t, doc.Rules, "strict")
	testutil.AssertEqual(t, len(doc.Pieces), 32)
	testutil.AssertEqual(t, doc.History, []string{"e2-e4"})
	testutil.AssertEqual(t, doc.Selected, testutil.MustSquare(t, "g8"))
	testutil.AssertSameSquares(t, doc.Destinations, testutil.Squares(t, "f6", "h6"))

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteJSON(&buf, doc))

	var decoded map[string]interface{}
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	testutil.AssertEqual(t, decoded["sideToMove"], "black")
	testutil.AssertEqual(t, decoded["checked"], "none")
	testutil.AssertEqual(t, decoded["fen"], "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1")
	testutil.AssertEqual(t, decoded["moveCount"], float64(1))
}

func TestJSONWriterBatches(t *testing.T) {
	g := quietGame(t)
	var buf bytes.Buffer
	w := NewStateWriter(&buf, config.NewConfigBuilder().WithJSONOutput(true).Build())

	testutil.AssertNoError(t, w.WriteState(g))
	g.SelectSquare(testutil.MustSquare(t, "d2"))
	g.SelectSquare(testutil.MustSquare(t, "d4"))
	testutil.AssertNoError(t, w.WriteState(g))
	testutil.AssertEqual(t, buf.Len(), 0, "nothing written before Close")

	testutil.AssertNoError(t, w.Close())
	var out JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	testutil.AssertEqual(t, len(out.States), 2)
	testutil.AssertEqual(t, out.States[0].MoveCount, uint(0))
	testutil.AssertEqual(t, out.States[1].MoveCount, uint(1))

	// A second Close has nothing left to write.
	buf.Reset()
	testutil.AssertNoError(t, w.Close())
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestDiagramWriter(t *testing.T) {
	g := quietGame(t, "Ra1", "ke8", "Ke1")
	g.SelectSquare(testutil.MustSquare(t, "a1"))
	g.SelectSquare(testutil.MustSquare(t, "a8"))

	var buf bytes.Buffer
	w := NewStateWriter(&buf, config.NewConfig())
	testutil.AssertNoError(t, w.WriteState(g))
	testutil.AssertNoError(t, w.Close())

	testutil.AssertTrue(t, strings.HasSuffix(buf.String(), "Black to move, ply 1, in check\n"), "status line:\n%s", buf.String())
	testutil.AssertTrue(t, strings.HasPrefix(buf.String(), "8 "), "coordinates by default")
}
