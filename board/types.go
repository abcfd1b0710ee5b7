package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board operations.
var (
	// ErrInvalidBoardSize indicates a board side length below 1.
	ErrInvalidBoardSize = errors.New("board: size must be at least 1")
	// ErrInvalidCoordinate indicates a cell outside the board.
	ErrInvalidCoordinate = errors.New("board: coordinate out of range")
	// ErrParseCoordinate indicates text that does not describe a cell.
	ErrParseCoordinate = errors.New("board: cannot parse coordinate")
)

// Coordinate identifies a board cell by zero-based column X and row Y.
// It is a comparable value type; two coordinates are equal when both
// components are equal.
type Coordinate struct {
	X int `json:"x" yaml:"x" toml:"x"`
	Y int `json:"y" yaml:"y" toml:"y"`
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Algebraic renders the coordinate in chess notation: file letter from X
// ('a' = 0) and 1-based rank from Y. Columns past 'z' fall back to String.
func (c Coordinate) Algebraic() string {
	if c.X < 0 || c.X >= 26 || c.Y < 0 {
		return c.String()
	}

	return fmt.Sprintf("%c%d", 'a'+rune(c.X), c.Y+1)
}

// Add returns c displaced by o. The result may lie off any board.
func (c Coordinate) Add(o Offset) Coordinate {
	return Coordinate{X: c.X + o.DX, Y: c.Y + o.DY}
}

// Offset is a knight displacement vector.
type Offset struct {
	DX, DY int
}

// Offsets lists the eight knight displacements in the fixed enumeration order
// used by every move generator in this module. Treat it as read-only; use
// KnightOffsets for a private copy.
var Offsets = [8]Offset{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

// KnightOffsets returns a copy of the displacement table.
func KnightOffsets() []Offset {
	out := make([]Offset, len(Offsets))
	copy(out, Offsets[:])

	return out
}

// IsKnightMove reports whether b is exactly one knight move away from a.
func IsKnightMove(a, b Coordinate) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)

	return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
