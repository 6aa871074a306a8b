// view.go - Terminal board driven by mouse clicks
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/game"
	"github.com/lgbarn/chessrules/internal/output"
	"github.com/lgbarn/chessrules/internal/store"
)

// Board layout on screen.
const (
	originX    = 3
	originY    = 1
	cellWidth  = 3
	flashDelay = 2 * time.Second
	autosave   = "autosave"
)

var (
	styleLight    = tcell.StyleDefault.Background(tcell.ColorTan).Foreground(tcell.ColorBlack)
	styleDark     = tcell.StyleDefault.Background(tcell.ColorSaddleBrown).Foreground(tcell.ColorBlack)
	styleSelected = tcell.StyleDefault.Background(tcell.ColorGold).Foreground(tcell.ColorBlack)
	stylePlayable = tcell.StyleDefault.Background(tcell.ColorDarkSeaGreen).Foreground(tcell.ColorBlack)
	styleKillable = tcell.StyleDefault.Background(tcell.ColorIndianRed).Foreground(tcell.ColorBlack)
	styleChecked  = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite).Bold(true)
	styleText     = tcell.StyleDefault
)

// flashExpired clears the message line once no newer message replaced it.
type flashExpired struct {
	generation int
}

type view struct {
	screen  tcell.Screen
	game    *game.Game
	store   *store.Store
	cfg     *config.Config
	message string
	flashes int
	pressed bool
}

// runView runs the interactive board until the user quits.
func runView(ctx context.Context, g *game.Game, st *store.Store, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	// Diagnostics on stderr would draw over the board.
	if cfg.LogFile == os.Stderr {
		cfg.SetLogFile(io.Discard)
		defer cfg.SetLogFile(os.Stderr)
	}

	v := &view{screen: screen, game: g, store: st, cfg: cfg}
	v.draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ctx, ev) {
				return nil
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		case *tcell.EventInterrupt:
			if exp, ok := ev.Data().(flashExpired); ok && exp.generation == v.flashes {
				v.message = ""
			}
		}
		v.draw()
	}
}

// handleKey reports whether the user asked to quit.
func (v *view) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'u':
		if err := v.game.Undo(); err != nil {
			v.flash(err.Error())
		} else {
			v.flash("undone")
		}
	case 'n':
		v.game.StartGame()
		v.flash("new game")
	case 's':
		v.save(ctx)
	}
	return false
}

func (v *view) save(ctx context.Context) {
	if v.store == nil {
		v.flash("no database (-db)")
		return
	}
	name := *saveName
	if name == "" {
		name = autosave
	}
	if err := v.store.Save(ctx, name, v.game.Snapshot()); err != nil {
		v.flash(err.Error())
		return
	}
	v.flash("saved " + name)
}

// handleMouse clicks a square on the press edge of the primary button.
func (v *view) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	if !down || v.pressed {
		v.pressed = down
		return
	}
	v.pressed = true

	x, y := ev.Position()
	sq, ok := squareAtCell(x, y)
	if !ok {
		return
	}
	res := v.game.SelectSquare(sq)
	if res.Move != nil {
		v.flash(res.Move.String())
	}
}

// flash shows msg until flashDelay passes or another message replaces it.
func (v *view) flash(msg string) {
	v.message = msg
	v.flashes++
	exp := flashExpired{generation: v.flashes}
	time.AfterFunc(flashDelay, func() {
		_ = v.screen.PostEvent(tcell.NewEventInterrupt(exp))
	})
}

// squareAtCell maps a screen cell to the board square drawn there.
func squareAtCell(x, y int) (chess.Square, bool) {
	if x < originX || y < originY {
		return chess.NoSquare, false
	}
	col := (x-originX)/cellWidth + 1
	row := chess.BoardSize - (y - originY)
	sq, err := chess.SquareAt(row, col)
	if err != nil {
		return chess.NoSquare, false
	}
	return sq, true
}

// cellOrigin is the left-most screen cell of sq.
func cellOrigin(sq chess.Square) (x, y int) {
	return originX + (sq.Column()-1)*cellWidth, originY + chess.BoardSize - sq.Row()
}

func (v *view) draw() {
	v.screen.Clear()
	board := v.game.Board()
	styles := squareStyles(v.game.Highlights())

	for sq := chess.FirstSq; sq <= chess.LastSq; sq++ {
		style, ok := styles[sq]
		if !ok {
			style = baseStyle(sq)
		}
		letter := ' '
		if piece := board.Get(sq); !piece.IsEmpty() {
			letter = rune(piece.Letter())
		}
		x, y := cellOrigin(sq)
		v.screen.SetContent(x, y, ' ', nil, style)
		v.screen.SetContent(x+1, y, letter, nil, style)
		v.screen.SetContent(x+2, y, ' ', nil, style)
	}

	for i := 0; i < chess.BoardSize; i++ {
		v.screen.SetContent(originX-2, originY+i, rune(chess.RowBase+chess.BoardSize-1-i), nil, styleText)
		v.screen.SetContent(originX+i*cellWidth+1, originY+chess.BoardSize, rune(chess.ColBase+i), nil, styleText)
	}

	status := output.StatusLine(v.game)
	if n := v.game.Repetitions(); n > 1 {
		status += fmt.Sprintf(", position seen %d times", n)
	}
	v.text(originY+chess.BoardSize+2, status)
	v.text(originY+chess.BoardSize+3, v.message)
	v.screen.Show()
}

func (v *view) text(y int, s string) {
	for i, r := range s {
		v.screen.SetContent(originX-2+i, y, r, nil, styleText)
	}
}

func baseStyle(sq chess.Square) tcell.Style {
	if (sq.Row()+sq.Column())%2 == 0 {
		return styleDark
	}
	return styleLight
}

// squareStyles colours the highlighted squares; later kinds win.
func squareStyles(h game.Highlights) map[chess.Square]tcell.Style {
	styles := make(map[chess.Square]tcell.Style)
	for _, sq := range h.Playable {
		styles[sq] = stylePlayable
	}
	for _, sq := range h.Killable {
		styles[sq] = styleKillable
	}
	if h.Checked != chess.NoSquare {
		styles[h.Checked] = styleChecked
	}
	if h.Selected != chess.NoSquare {
		styles[h.Selected] = styleSelected
	}
	return styles
}
