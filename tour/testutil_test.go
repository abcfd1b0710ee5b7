package tour_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/tour"
)

// bruteForce enumerates every simple knight path from start to end with at
// most maxMoves moves (0 = unbounded) by plain recursion, with no pruning and
// no deepening. It is the reference the engine is checked against.
func bruteForce(n int, start, end board.Coordinate, maxMoves int) []tour.Path {
	var out []tour.Path
	visited := map[board.Coordinate]bool{start: true}
	path := tour.Path{start}

	var rec func()
	rec = func() {
		cur := path[len(path)-1]
		if cur == end {
			out = append(out, append(tour.Path(nil), path...))
			return
		}
		if maxMoves > 0 && path.Moves() >= maxMoves {
			return
		}
		for _, m := range board.LegalMoves(n, cur) {
			if visited[m] {
				continue
			}
			visited[m] = true
			path = append(path, m)
			rec()
			path = path[:len(path)-1]
			visited[m] = false
		}
	}
	rec()

	return out
}

// pathKeys renders paths to sorted strings for order-insensitive comparison.
func pathKeys(paths []tour.Path) []string {
	keys := make([]string, len(paths))
	for i, p := range paths {
		s := ""
		for _, c := range p {
			s += c.String()
		}
		keys[i] = s
	}
	sort.Strings(keys)

	return keys
}

// requireValidPaths asserts every invariant a returned path must hold.
func requireValidPaths(t *testing.T, n int, start, end board.Coordinate, paths []tour.Path) {
	t.Helper()
	for i, p := range paths {
		require.NoError(t, p.Validate(n), "path %d", i)
		require.Equal(t, start, p.Start(), "path %d start", i)
		require.Equal(t, end, p.End(), "path %d end", i)
		if i > 0 {
			require.LessOrEqual(t, paths[i-1].Moves(), p.Moves(), "paths must be shortest first")
		}
	}
}
