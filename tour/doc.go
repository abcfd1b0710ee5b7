// Package tour finds knight paths between two cells of an N×N chessboard.
//
// What:
//
//   - FindTours: exhaustive depth-first backtracking over the knight graph,
//     returning every simple path (no repeated cell) from a start cell to an
//     end cell within a move bound, shortest first.
//   - Solve: the request/response surface used by callers; never panics and
//     reports malformed input as InvalidInput.
//   - SolveBatch: independent searches run concurrently, one session each.
//
// How:
//
//   - Each call owns a session: a visited bitset, the current path and an
//     explicit frame stack bounded by N² frames. Entering a cell marks it and
//     pushes a frame; leaving pops the frame and unmarks the cell.
//   - A breadth-first distance table from the end cell (package reach) gives a
//     lower bound on the moves still needed from any cell. Branches that cannot
//     arrive within their remaining budget are pruned, which never drops a
//     qualifying path.
//   - The move bound is deepened from the shortest distance upward in steps of
//     two (a knight move always changes square colour), so results come out
//     shortest first and StopAtFirst yields a shortest path.
//   - Candidates are tried in board.Offsets order. WithWarnsdorffOrdering
//     reorders them by onward degree but never skips any.
//
// Outcomes:
//
//   - Success       at least one path
//   - NoTourFound   complete search, nothing found (not an error)
//   - Cancelled     context done; partial paths, completeness not guaranteed
//   - InvalidInput  board size < 1, cell off the board, negative bound (Solve only;
//     FindTours returns the error instead)
//
// Errors:
//
//   - board.ErrInvalidBoardSize, board.ErrInvalidCoordinate
//   - ErrInvalidOption         negative MaxMoves or MaxPaths
//   - hook errors              propagated from OnVisit or OnPath
//
// Options:
//
//   - WithMaxMoves(k)           bound the move count (0 = only the N²-1 hard bound)
//   - WithMaxPaths(k)           stop after k paths
//   - WithStopAtFirst()         stop after the first (shortest) path
//   - WithWarnsdorffOrdering()  low-degree moves first
//   - WithOnVisit(fn)           cell-entry hook
//   - WithOnPath(fn)            streaming path hook
//   - WithLogger(l)             debug telemetry via log/slog
package tour
