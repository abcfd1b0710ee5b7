package board

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCoordinate reads a cell written either as "x,y" (zero-based, optional
// parentheses and spaces) or in algebraic notation such as "a1" or "h8".
// It does not check the cell against any board.
func ParseCoordinate(s string) (Coordinate, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimSuffix(strings.TrimPrefix(t, "("), ")")
	if t == "" {
		return Coordinate{}, fmt.Errorf("%w: empty input", ErrParseCoordinate)
	}

	if xs, ys, ok := strings.Cut(t, ","); ok {
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return Coordinate{}, fmt.Errorf("%w: %q", ErrParseCoordinate, s)
		}

		return Coordinate{X: x, Y: y}, nil
	}

	file := t[0] | 0x20 // lower-case ASCII
	if file < 'a' || file > 'z' {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrParseCoordinate, s)
	}
	rank, err := strconv.Atoi(t[1:])
	if err != nil || rank < 1 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrParseCoordinate, s)
	}

	return Coordinate{X: int(file - 'a'), Y: rank - 1}, nil
}
