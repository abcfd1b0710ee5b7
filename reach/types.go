// Package reach provides tunable options and error definitions
// for breadth-first knight reachability over a board.Board.
package reach

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/knighttour/board"
)

// Sentinel errors for reachability queries.
var (
	// ErrCellOutOfRange is returned when the source or target cell is off the board.
	ErrCellOutOfRange = errors.New("reach: cell out of range")

	// ErrUnreachable is returned when no knight path joins two cells.
	ErrUnreachable = errors.New("reach: cell unreachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// Unreached marks a cell the walk never reached in Result.Dist.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a reachability walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a cell is dequeued. Returning an error
	// aborts the walk and propagates that error.
	OnVisit func(c board.Coordinate, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many moves.
	// Zero disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(board.Coordinate, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run as each cell is visited.
func WithOnVisit(fn func(c board.Coordinate, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk after d moves.
//
//	d > 0:  limit to d moves
//	d == 0: no limit
//	d < 0:  invalid → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a reachability walk from one source cell.
//   - Dist[i] is the minimum number of knight moves from the source to the
//     cell with board index i, or Unreached.
//   - Parent[i] is the board index of the predecessor on one shortest path,
//     or -1 for the source and unreached cells.
//   - Order lists cells in visit sequence.
type Result struct {
	Board  board.Board
	From   board.Coordinate
	Dist   []int
	Parent []int
	Order  []board.Coordinate
}

// Distance returns the move count from the source to c, and false when c is
// off the board or was not reached.
func (r *Result) Distance(c board.Coordinate) (int, bool) {
	if !r.Board.Contains(c) {
		return Unreached, false
	}
	d := r.Dist[r.Board.Index(c)]

	return d, d != Unreached
}

// PathTo reconstructs one shortest knight path from the source to dest.
// Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest board.Coordinate) ([]board.Coordinate, error) {
	d, ok := r.Distance(dest)
	if !ok {
		return nil, fmt.Errorf("%w: %s from %s", ErrUnreachable, dest, r.From)
	}
	path := make([]board.Coordinate, d+1)
	for i, cur := d, r.Board.Index(dest); i >= 0; i-- {
		path[i] = r.Board.Coordinate(cur)
		cur = r.Parent[cur]
	}

	return path, nil
}
