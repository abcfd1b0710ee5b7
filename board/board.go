package board

import "fmt"

// Board is a square N×N grid. It is immutable once built and carries no
// per-cell state; it exists to bound coordinate validity and to map cells to
// dense row-major indices.
type Board struct {
	size int
}

// NewBoard returns an n×n board.
// Returns ErrInvalidBoardSize if n < 1.
func NewBoard(n int) (Board, error) {
	if n < 1 {
		return Board{}, fmt.Errorf("%w: got %d", ErrInvalidBoardSize, n)
	}

	return Board{size: n}, nil
}

// MustBoard is NewBoard for sizes known to be valid; it panics otherwise.
func MustBoard(n int) Board {
	b, err := NewBoard(n)
	if err != nil {
		panic(err)
	}

	return b
}

// Size returns the side length N.
func (b Board) Size() int { return b.size }

// Area returns the number of cells, N².
func (b Board) Area() int { return b.size * b.size }

// Contains reports whether c lies within [0, N)².
// Complexity: O(1).
func (b Board) Contains(c Coordinate) bool {
	return inBounds(b.size, c)
}

// Check returns nil if c is on the board, or ErrInvalidCoordinate naming c.
func (b Board) Check(c Coordinate) error {
	if !b.Contains(c) {
		return fmt.Errorf("%w: %s on %dx%d board", ErrInvalidCoordinate, c, b.size, b.size)
	}

	return nil
}

// Index maps c to its row-major index y*N + x. c must be on the board.
// Complexity: O(1).
func (b Board) Index(c Coordinate) int {
	return c.Y*b.size + c.X
}

// Coordinate converts a row-major index back to a cell.
// Complexity: O(1).
func (b Board) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % b.size, Y: idx / b.size}
}

// Cells returns every cell in row-major order.
func (b Board) Cells() []Coordinate {
	out := make([]Coordinate, 0, b.Area())
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			out = append(out, Coordinate{X: x, Y: y})
		}
	}

	return out
}

// LegalMoves returns the on-board knight destinations from c.
func (b Board) LegalMoves(c Coordinate) []Coordinate {
	return LegalMoves(b.size, c)
}

// Degree returns the number of on-board knight destinations from c.
func (b Board) Degree(c Coordinate) int {
	return Degree(b.size, c)
}

func inBounds(n int, c Coordinate) bool {
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}
