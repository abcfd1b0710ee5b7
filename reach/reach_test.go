package reach_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/reach"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	b := board.MustBoard(4)

	_, err := reach.BFS(b, board.C(4, 0))
	assert.ErrorIs(t, err, reach.ErrCellOutOfRange)

	_, err = reach.BFS(b, board.C(0, 0), reach.WithMaxDepth(-1))
	assert.ErrorIs(t, err, reach.ErrOptionViolation)

	_, err = reach.BFS(board.Board{}, board.C(0, 0))
	assert.ErrorIs(t, err, board.ErrInvalidBoardSize)

	_, err = reach.Distance(b, board.C(0, 0), board.C(0, -1))
	assert.ErrorIs(t, err, reach.ErrCellOutOfRange)
}

func TestDistance_KnownValues(t *testing.T) {
	cases := []struct {
		name     string
		n        int
		from, to board.Coordinate
		want     int
	}{
		{"Self", 8, board.C(3, 3), board.C(3, 3), 0},
		{"OneMove", 8, board.C(0, 0), board.C(1, 2), 1},
		{"CornerToCorner8", 8, board.C(0, 0), board.C(7, 7), 6},
		{"CornerDiagonal8", 8, board.C(0, 0), board.C(1, 1), 4},
		{"CornerToCorner5", 5, board.C(0, 0), board.C(4, 4), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := reach.Distance(board.MustBoard(tc.n), tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d)
		})
	}
}

// TestDistance_CenterOf3x3 covers the isolated centre cell of a 3×3 board.
func TestDistance_CenterOf3x3(t *testing.T) {
	b := board.MustBoard(3)
	_, err := reach.Distance(b, board.C(0, 0), board.C(1, 1))
	assert.ErrorIs(t, err, reach.ErrUnreachable)

	res, err := reach.BFS(b, board.C(0, 0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 8, "every cell but the centre is reachable")
	_, ok := res.Distance(board.C(1, 1))
	assert.False(t, ok)
}

// TestBFS_ParityAndSymmetry checks that distances alternate square colour and
// that the walk from a to b agrees with the walk from b to a.
func TestBFS_ParityAndSymmetry(t *testing.T) {
	b := board.MustBoard(6)
	from := board.C(1, 4)
	res, err := reach.BFS(b, from)
	require.NoError(t, err)

	for _, c := range b.Cells() {
		d, ok := res.Distance(c)
		require.True(t, ok, "%s unreachable on 6x6", c)
		colour := (c.X + c.Y + from.X + from.Y) % 2
		assert.Equal(t, colour, d%2, "parity at %s", c)

		back, err := reach.Distance(b, c, from)
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
}

func TestResult_PathTo(t *testing.T) {
	b := board.MustBoard(5)
	res, err := reach.BFS(b, board.C(0, 0))
	require.NoError(t, err)

	path, err := res.PathTo(board.C(4, 4))
	require.NoError(t, err)
	assert.Equal(t, []board.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 4}, {X: 2, Y: 3}, {X: 4, Y: 4}}, path)
	for i := 1; i < len(path); i++ {
		assert.True(t, board.IsKnightMove(path[i-1], path[i]))
	}

	res3, err := reach.BFS(board.MustBoard(3), board.C(0, 0))
	require.NoError(t, err)
	_, err = res3.PathTo(board.C(1, 1))
	assert.ErrorIs(t, err, reach.ErrUnreachable)
}

func TestBFS_MaxDepth(t *testing.T) {
	b := board.MustBoard(8)
	res, err := reach.BFS(b, board.C(0, 0), reach.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []board.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}}, res.Order)
	_, ok := res.Distance(board.C(7, 7))
	assert.False(t, ok)
}

func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := reach.BFS(board.MustBoard(8), board.C(0, 0), reach.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	visits := 0
	_, err := reach.BFS(board.MustBoard(8), board.C(0, 0), reach.WithOnVisit(func(board.Coordinate, int) error {
		visits++
		if visits == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visits)
}
