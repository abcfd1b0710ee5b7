package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knighttour/board"
)

//----------------------------------------------------------------------------//
// NewBoard and bounds
//----------------------------------------------------------------------------//

func TestNewBoard_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -64} {
		_, err := board.NewBoard(n)
		assert.ErrorIs(t, err, board.ErrInvalidBoardSize, "size %d", n)
	}
}

func TestBoard_Contains(t *testing.T) {
	b := board.MustBoard(3)

	for _, c := range []board.Coordinate{{0, 0}, {2, 2}, {1, 0}, {0, 2}} {
		assert.True(t, b.Contains(c), "Contains(%s)", c)
		assert.NoError(t, b.Check(c))
	}
	for _, c := range []board.Coordinate{{-1, 0}, {3, 0}, {0, 3}, {2, -1}} {
		assert.False(t, b.Contains(c), "Contains(%s)", c)
		assert.ErrorIs(t, b.Check(c), board.ErrInvalidCoordinate)
	}
}

func TestBoard_IndexRoundTrip(t *testing.T) {
	b := board.MustBoard(5)
	for i, c := range b.Cells() {
		assert.Equal(t, i, b.Index(c))
		assert.Equal(t, c, b.Coordinate(i))
	}
	assert.Len(t, b.Cells(), b.Area())
}

func TestMustBoard_Panics(t *testing.T) {
	assert.Panics(t, func() { board.MustBoard(0) })
}

//----------------------------------------------------------------------------//
// LegalMoves
//----------------------------------------------------------------------------//

func TestLegalMoves_Corner(t *testing.T) {
	got := board.LegalMoves(8, board.C(0, 0))
	assert.Equal(t, []board.Coordinate{{1, 2}, {2, 1}}, got)
}

func TestLegalMoves_CenterUsesTableOrder(t *testing.T) {
	got := board.LegalMoves(8, board.C(3, 3))
	want := []board.Coordinate{
		{1, 2}, {1, 4}, {2, 1}, {2, 5},
		{4, 1}, {4, 5}, {5, 2}, {5, 4},
	}
	assert.Equal(t, want, got)
}

func TestLegalMoves_SingleCellBoard(t *testing.T) {
	assert.Empty(t, board.LegalMoves(1, board.C(0, 0)))
	assert.Zero(t, board.Degree(1, board.C(0, 0)))
}

// TestLegalMoves_Properties checks every cell of boards 3..10: destinations are
// on-board, distinct, knight-adjacent, never the origin, at most eight.
func TestLegalMoves_Properties(t *testing.T) {
	for n := 3; n <= 10; n++ {
		b := board.MustBoard(n)
		for _, c := range b.Cells() {
			moves := b.LegalMoves(c)
			require.LessOrEqual(t, len(moves), 8)
			require.Equal(t, len(moves), b.Degree(c))

			seen := make(map[board.Coordinate]bool, len(moves))
			for _, m := range moves {
				require.True(t, b.Contains(m), "n=%d from %s: %s off board", n, c, m)
				require.NotEqual(t, c, m)
				require.True(t, board.IsKnightMove(c, m))
				require.False(t, seen[m], "duplicate %s", m)
				seen[m] = true
			}
		}
	}
}

// TestLegalMoves_OffBoardOrigin exercises an origin that is itself off the
// board: only the destinations are filtered.
func TestLegalMoves_OffBoardOrigin(t *testing.T) {
	got := board.LegalMoves(4, board.C(-1, 0))
	assert.Equal(t, []board.Coordinate{{0, 2}, {1, 1}}, got)
}

func TestAppendLegalMoves_ReusesBuffer(t *testing.T) {
	buf := make([]board.Coordinate, 0, 8)
	buf = board.AppendLegalMoves(buf, 8, board.C(0, 0))
	buf = board.AppendLegalMoves(buf[:0], 8, board.C(7, 7))
	assert.Equal(t, []board.Coordinate{{5, 6}, {6, 5}}, buf)
}

func TestKnightOffsets_Copy(t *testing.T) {
	offs := board.KnightOffsets()
	offs[0] = board.Offset{DX: 9, DY: 9}
	assert.Equal(t, board.Offset{DX: -2, DY: -1}, board.Offsets[0])
}

//----------------------------------------------------------------------------//
// Coordinate text forms
//----------------------------------------------------------------------------//

func TestParseCoordinate(t *testing.T) {
	cases := []struct {
		in   string
		want board.Coordinate
	}{
		{"0,0", board.C(0, 0)},
		{" 3 , 4 ", board.C(3, 4)},
		{"(2,7)", board.C(2, 7)},
		{"a1", board.C(0, 0)},
		{"H8", board.C(7, 7)},
		{"c12", board.C(2, 11)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := board.ParseCoordinate(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseCoordinate_Errors(t *testing.T) {
	for _, in := range []string{"", "()", "x,1", "1,", "a", "a0", "11", "#3"} {
		_, err := board.ParseCoordinate(in)
		assert.ErrorIs(t, err, board.ErrParseCoordinate, "input %q", in)
	}
}

func TestCoordinate_Strings(t *testing.T) {
	assert.Equal(t, "(4,2)", board.C(4, 2).String())
	assert.Equal(t, "e3", board.C(4, 2).Algebraic())
	assert.Equal(t, "(30,1)", board.C(30, 1).Algebraic())
}
