// Package tour enumerates simple knight paths between two cells of an N×N
// board by exhaustive depth-first backtracking.
//
// Key features:
//   - FindTours(ctx, n, start, end, opts...): every simple path from start to
//     end within the move bound, shortest first
//   - Bounds: WithMaxMoves, WithMaxPaths / WithStopAtFirst, hard bound N²-1
//   - Ordering: table order by default, WithWarnsdorffOrdering as a secondary
//     heuristic on top of full backtracking
//   - Hooks: OnVisit (cell entry) and OnPath (streaming results)
//   - Cancellation via context.Context, checked each time a cell is entered
//
// Complexity:
//
//   - Time:   exponential in the move bound in the worst case; a breadth-first
//     distance table from the target prunes every branch that cannot arrive
//     within its remaining budget.
//   - Memory: O(N²) for the session (visited bitset, path buffer, frame stack)
//     plus the returned paths.
package tour

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/reach"
)

// frame is one level of the explicit depth-first stack: the cell entered at
// that level and its remaining candidate moves.
type frame struct {
	cell  board.Coordinate
	moves [len(board.Offsets)]board.Coordinate
	n     int // candidates stored in moves
	next  int // next candidate to try
}

// session owns all mutable state of one search. It is created per call and
// never shared.
type session struct {
	ctx   context.Context
	board board.Board
	start board.Coordinate
	end   board.Coordinate
	opts  SearchOptions

	dist    []int          // knight distance from each cell to end
	visited *bitset.BitSet // cells on the current path
	path    Path           // current path, mirrors visited in insertion order
	stack   []frame
	buf     []board.Coordinate

	paths []Path
	stats Stats
}

// FindTours enumerates simple knight paths from start to end on an n×n board.
//
// Paths are returned shortest first: the engine deepens the move bound one
// parity step at a time, starting from the breadth-first distance, and each
// pass records exactly the paths of that length in depth-first offset order.
// The first path found is therefore a shortest one. Within its bound the search
// is exhaustive, and identical inputs yield identical ordered results.
//
// start == end yields the single path [start].
//
// Returns board.ErrInvalidBoardSize, board.ErrInvalidCoordinate or
// ErrInvalidOption for malformed input, before any search work. A search that
// finds nothing reports NoTourFound with a nil error. Cancellation reports
// Cancelled with the paths found so far and a nil error; Result.Err holds the
// context error. Errors returned by hooks abort the search and are returned
// together with the partial result.
func FindTours(ctx context.Context, n int, start, end board.Coordinate, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	b, err := board.NewBoard(n)
	if err != nil {
		return nil, err
	}
	if err = b.Check(start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err = b.Check(end); err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s := &session{
		ctx:     ctx,
		board:   b,
		start:   start,
		end:     end,
		opts:    o,
		visited: bitset.New(uint(b.Area())),
		path:    make(Path, 0, b.Area()),
		stack:   make([]frame, 0, b.Area()),
		buf:     make([]board.Coordinate, 0, len(board.Offsets)),
	}

	began := time.Now()
	o.Logger.Debug("tour search started",
		slog.Int("size", n),
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.Int("max_moves", o.MaxMoves),
		slog.Int("max_paths", o.MaxPaths))

	res, err := s.run()
	res.Stats = s.stats
	res.Stats.Duration = time.Since(began)

	o.Logger.Debug("tour search finished",
		slog.String("status", res.Status.String()),
		slog.Int("paths", len(res.Paths)),
		slog.Int("expanded", res.Stats.Expanded),
		slog.Int("pruned", res.Stats.Pruned),
		slog.Int("passes", res.Stats.Passes),
		slog.Duration("duration", res.Stats.Duration))

	return res, err
}

// run executes the deepening passes and classifies the outcome.
func (s *session) run() (*Result, error) {
	if s.start == s.end {
		s.stats.Expanded++
		if err := s.opts.OnVisit(s.start, 0); err != nil {
			return s.finish(fmt.Errorf("tour: OnVisit hook at %s: %w", s.start, err))
		}
		p := Path{s.start}
		if err := s.opts.OnPath(Path{s.start}); err != nil {
			return &Result{Status: Success, Paths: []Path{p}}, fmt.Errorf("tour: OnPath hook: %w", err)
		}

		return &Result{Status: Success, Paths: []Path{p}}, nil
	}

	// The knight graph is undirected: distances from end are distances to end.
	table, err := reach.BFS(s.board, s.end, reach.WithContext(s.ctx))
	if err != nil {
		return s.finish(err)
	}
	s.dist = table.Dist

	lo := s.dist[s.board.Index(s.start)]
	if lo == reach.Unreached {
		return s.finish(nil)
	}
	hi := s.board.Area() - 1
	if s.opts.MaxMoves > 0 && s.opts.MaxMoves < hi {
		hi = s.opts.MaxMoves
	}

	// Each knight move flips square colour, so only bounds with the parity of
	// lo can be met exactly.
	for bound := lo; bound <= hi; bound += 2 {
		s.stats.Passes++
		if err = s.pass(bound); err != nil {
			return s.finish(err)
		}
	}

	return s.finish(nil)
}

// finish maps the terminal error of a search to a Result.
func (s *session) finish(err error) (*Result, error) {
	res := &Result{Paths: s.paths}
	switch {
	case err == nil || errors.Is(err, errLimitReached):
		res.Status = NoTourFound
		if len(s.paths) > 0 {
			res.Status = Success
		}

		return res, nil
	case s.ctx.Err() != nil && errors.Is(err, s.ctx.Err()):
		res.Status = Cancelled
		res.Err = err

		return res, nil
	default:
		res.Status = Cancelled
		res.Err = err

		return res, err
	}
}

// pass runs one depth-first backtracking pass that records the paths of
// exactly bound moves. The stack never grows past bound+1 ≤ N² frames.
func (s *session) pass(bound int) error {
	s.visited.ClearAll()
	s.path = s.path[:0]
	s.stack = s.stack[:0]

	if err := s.enter(s.start, bound); err != nil {
		return err
	}
	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		if top.next == top.n {
			s.leave()
			continue
		}
		next := top.moves[top.next]
		top.next++
		if err := s.enter(next, bound); err != nil {
			return err
		}
	}

	return nil
}

// enter pushes c onto the path, marks it visited and collects its candidate
// moves. On reaching end with exactly bound moves the path is recorded.
func (s *session) enter(c board.Coordinate, bound int) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}

	depth := len(s.path)
	s.path = append(s.path, c)
	s.visited.Set(uint(s.board.Index(c)))
	s.stack = append(s.stack, frame{cell: c})
	s.stats.Expanded++

	if err := s.opts.OnVisit(c, depth); err != nil {
		return fmt.Errorf("tour: OnVisit hook at %s: %w", c, err)
	}

	if c == s.end {
		if depth == bound {
			return s.record()
		}
		return nil
	}

	// Moves left once a candidate is taken.
	remaining := bound - depth - 1
	s.buf = board.AppendLegalMoves(s.buf[:0], s.board.Size(), c)
	if s.opts.Warnsdorff {
		s.orderByDegree(s.buf)
	}

	top := &s.stack[len(s.stack)-1]
	for _, m := range s.buf {
		mi := s.board.Index(m)
		if s.visited.Test(uint(mi)) {
			continue
		}
		d := s.dist[mi]
		if d == reach.Unreached || d > remaining || (m == s.end && remaining != 0) {
			s.stats.Pruned++
			continue
		}
		top.moves[top.n] = m
		top.n++
	}

	return nil
}

// leave pops the top frame: the backtrack step.
func (s *session) leave() {
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.path = s.path[:len(s.path)-1]
	s.visited.Clear(uint(s.board.Index(top.cell)))
}

// record copies the current path into the accumulator.
func (s *session) record() error {
	p := make(Path, len(s.path))
	copy(p, s.path)
	s.paths = append(s.paths, p)

	out := make(Path, len(p))
	copy(out, p)
	if err := s.opts.OnPath(out); err != nil {
		return fmt.Errorf("tour: OnPath hook: %w", err)
	}
	if s.opts.MaxPaths > 0 && len(s.paths) >= s.opts.MaxPaths {
		return errLimitReached
	}

	return nil
}
