// Package reach computes breadth-first knight distances on a board.Board,
// returning minimum move counts, parent links, and visit order.
//
// The knight graph is undirected, so a table computed from a target cell also
// gives every cell's distance to that target. The tour engine relies on this to
// prune branches that can no longer arrive within their move budget.
package reach

import (
	"fmt"

	"github.com/katalvlaran/knighttour/board"
)

// queueItem pairs a board index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	board board.Board
	opts  Options
	queue []queueItem
	moves []board.Coordinate
	res   *Result
}

// BFS runs breadth-first search over knight moves on b starting from `from`,
// applying any number of functional Options.
// Returns ErrOptionViolation for bad options, ErrCellOutOfRange when from is off
// the board, the context error on cancellation, or any OnVisit error. On error
// the partial Result is still returned.
//
// Time: O(N²). Memory: O(N²).
func BFS(b board.Board, from board.Coordinate, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if b.Size() < 1 {
		return nil, board.ErrInvalidBoardSize
	}
	if !b.Contains(from) {
		return nil, fmt.Errorf("%w: %s", ErrCellOutOfRange, from)
	}

	area := b.Area()
	w := &walker{
		board: b,
		opts:  o,
		queue: make([]queueItem, 0, area),
		moves: make([]board.Coordinate, 0, len(board.Offsets)),
		res: &Result{
			Board:  b,
			From:   from,
			Dist:   make([]int, area),
			Parent: make([]int, area),
			Order:  make([]board.Coordinate, 0, area),
		},
	}
	for i := range w.res.Dist {
		w.res.Dist[i] = Unreached
		w.res.Parent[i] = -1
	}

	w.enqueue(b.Index(from), 0, -1)

	return w.res, w.loop()
}

// Distance returns the minimum number of knight moves from `from` to `to` on b.
// Returns ErrUnreachable when no path exists.
func Distance(b board.Board, from, to board.Coordinate, opts ...Option) (int, error) {
	if !b.Contains(to) {
		return Unreached, fmt.Errorf("%w: %s", ErrCellOutOfRange, to)
	}
	res, err := BFS(b, from, opts...)
	if err != nil {
		return Unreached, err
	}
	d, ok := res.Distance(to)
	if !ok {
		return Unreached, fmt.Errorf("%w: %s from %s", ErrUnreachable, to, from)
	}

	return d, nil
}

// enqueue records depth and parent for idx and appends it to the queue.
func (w *walker) enqueue(idx, depth, parent int) {
	w.res.Dist[idx] = depth
	w.res.Parent[idx] = parent
	w.queue = append(w.queue, queueItem{idx: idx, depth: depth})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[head]
		cell := w.board.Coordinate(item.idx)
		w.res.Order = append(w.res.Order, cell)
		if err := w.opts.OnVisit(cell, item.depth); err != nil {
			return fmt.Errorf("reach: OnVisit error at %s: %w", cell, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		w.moves = board.AppendLegalMoves(w.moves[:0], w.board.Size(), cell)
		for _, m := range w.moves {
			if mi := w.board.Index(m); w.res.Dist[mi] == Unreached {
				w.enqueue(mi, next, item.idx)
			}
		}
	}

	return nil
}
