package chess

import "github.com/lgbarn/chessrules/internal/errors"

// Axis selects the line family walked from an origin square.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
	AxisDiagonal
)

// Side restricts a walk to one semantic direction of an axis.
// Near means decreasing row (decreasing column on AxisRow);
// far means increasing row (increasing column on AxisRow).
type Side int

const (
	SideBoth Side = iota
	SideNear
	SideFar
)

// Direction is a single step in rows and columns.
type Direction struct {
	DRow int
	DCol int
}

// Compass directions. North is towards row 8.
var (
	North     = Direction{1, 0}
	South     = Direction{-1, 0}
	East      = Direction{0, 1}
	West      = Direction{0, -1}
	NorthEast = Direction{1, 1}
	NorthWest = Direction{1, -1}
	SouthEast = Direction{-1, 1}
	SouthWest = Direction{-1, -1}
)

// OrthogonalDirections are the rook directions.
var OrthogonalDirections = []Direction{North, South, East, West}

// DiagonalDirections are the bishop directions.
var DiagonalDirections = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}

// Step returns the square one step away in d, and false off the board.
func (d Direction) Step(s Square) (Square, bool) {
	row, col := s.Row()+d.DRow, s.Column()+d.DCol
	if !s.Valid() || !onBoard(row, col) {
		return NoSquare, false
	}
	return squareAt(row, col), true
}

// Offset returns the square dRow rows and dCol columns from s.
func Offset(s Square, dRow, dCol int) (Square, bool) {
	return Direction{dRow, dCol}.Step(s)
}

// Directions returns the step directions for an axis restricted to side.
func Directions(axis Axis, side Side) []Direction {
	switch axis {
	case AxisRow:
		return pick(side, []Direction{West}, []Direction{East})
	case AxisColumn:
		return pick(side, []Direction{South}, []Direction{North})
	case AxisDiagonal:
		return pick(side, []Direction{SouthWest, SouthEast}, []Direction{NorthWest, NorthEast})
	}
	return nil
}

func pick(side Side, near, far []Direction) []Direction {
	switch side {
	case SideNear:
		return near
	case SideFar:
		return far
	}
	out := make([]Direction, 0, len(near)+len(far))
	out = append(out, near...)
	return append(out, far...)
}

// Ray walks from origin (exclusive) in d until the board edge or limit
// squares have been produced. A limit of 0 means unlimited.
func Ray(origin Square, d Direction, limit int) []Square {
	var ray []Square
	sq := origin
	for limit == 0 || len(ray) < limit {
		next, ok := d.Step(sq)
		if !ok {
			break
		}
		ray = append(ray, next)
		sq = next
	}
	return ray
}

// Rays returns one ray per direction of axis/side, each ordered by
// increasing distance from origin.
func Rays(origin Square, axis Axis, limit int, side Side) ([][]Square, error) {
	if !origin.Valid() {
		return nil, &errors.SquareError{Err: errors.ErrOutOfRange, Op: "rays", Square: int(origin)}
	}
	dirs := Directions(axis, side)
	rays := make([][]Square, 0, len(dirs))
	for _, d := range dirs {
		rays = append(rays, Ray(origin, d, limit))
	}
	return rays, nil
}

// SquaresAlong returns every square on the given axis from origin, ordered by
// increasing distance. Occupancy is ignored; blocking belongs to move generation.
func SquaresAlong(origin Square, axis Axis, limit int, side Side) ([]Square, error) {
	rays, err := Rays(origin, axis, limit, side)
	if err != nil {
		return nil, err
	}
	var out []Square
	for dist := 0; ; dist++ {
		added := false
		for _, ray := range rays {
			if dist < len(ray) {
				out = append(out, ray[dist])
				added = true
			}
		}
		if !added {
			return out, nil
		}
	}
}

// Line returns every square on the full line through origin in direction d,
// both ways, excluding origin.
func Line(origin Square, d Direction) []Square {
	back := Direction{-d.DRow, -d.DCol}
	return append(Ray(origin, d, 0), Ray(origin, back, 0)...)
}
