package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Survey summarises the options of the side to move in a position.
type Survey struct {
	SideToMove chess.Colour `json:"sideToMove"`
	Checked    chess.Colour `json:"checked"`
	Pieces     int          `json:"pieces"`
	Mobility   int          `json:"mobility"`
	Captures   int          `json:"captures"`
	Stuck      int          `json:"stuck"`
}

// SurveyPosition counts destinations for every piece of the side to move.
// Mobility sums all destinations, Captures those holding an enemy piece and
// Stuck the pieces with none. A side without a king is never in check.
func SurveyPosition(pos Position, rules RuleSet) (Survey, error) {
	side := pos.SideToMove
	s := Survey{SideToMove: side, Checked: chess.NoColour}

	inCheck, err := IsInCheck(pos.Board, side)
	switch {
	case errors.Is(err, errors.ErrNoKing):
	case err != nil:
		return Survey{}, err
	case inCheck:
		s.Checked = side
	}

	for _, pl := range pos.Board.Pieces(side) {
		s.Pieces++
		dests, err := Destinations(pos.Board, pl.Square, rules)
		if err != nil {
			return Survey{}, err
		}
		dests = Dedupe(dests)
		if len(dests) == 0 {
			s.Stuck++
		}
		s.Mobility += len(dests)
		for _, d := range dests {
			if target := pos.Board.Get(d); !target.IsEmpty() && target.Colour != side {
				s.Captures++
			}
		}
	}
	return s, nil
}
