package tour

import "github.com/katalvlaran/knighttour/board"

// orderByDegree sorts moves in place by ascending onward degree (Warnsdorff's
// rule): the number of unvisited legal destinations from each move. The sort
// is stable, so ties keep offset-table order and results stay reproducible.
//
// This only reorders candidates; every candidate is still explored.
func (s *session) orderByDegree(moves []board.Coordinate) {
	var deg [len(board.Offsets)]int
	for i, m := range moves {
		deg[i] = s.onwardDegree(m)
	}
	// insertion sort: at most 8 elements
	for i := 1; i < len(moves); i++ {
		m, d := moves[i], deg[i]
		j := i - 1
		for ; j >= 0 && deg[j] > d; j-- {
			moves[j+1], deg[j+1] = moves[j], deg[j]
		}
		moves[j+1], deg[j+1] = m, d
	}
}

// onwardDegree counts the unvisited legal destinations from c.
func (s *session) onwardDegree(c board.Coordinate) int {
	d := 0
	for _, o := range board.Offsets {
		next := c.Add(o)
		if s.board.Contains(next) && !s.visited.Test(uint(s.board.Index(next))) {
			d++
		}
	}

	return d
}
