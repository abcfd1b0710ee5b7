// Package knighttour finds knight paths on a square board: every simple path
// a chess knight can take between two cells of an N×N board, shortest first.
//
// What is knighttour?
//
//	A small, dependency-light engine with a CLI on top:
//		• Board topology: coordinates, the eight knight offsets, legal moves
//		• Reachability: BFS move distances, used as a pruning bound
//		• Tour search: iterative-deepening DFS over simple paths, with
//		  move and path limits, Warnsdorff ordering, hooks and cancellation
//		• Requests & batches: typed request/response, concurrent solving
//		• Rendering: labelled board text, JSON, YAML and TOML documents
//
// Why choose knighttour?
//
//   - Shortest first - the first path returned is always a minimum-move path
//   - Cancellable - a context stops the search and keeps what was found
//   - Session-scoped - no package state, safe to run searches in parallel
//   - Hookable - OnVisit and OnPath observe or stop a search
//
// Packages:
//
//	board/          Coordinate, Board, knight offsets, LegalMoves, parsing
//	reach/          BFS distance tables and shortest move counts
//	tour/           FindTours, Solve, SolveBatch, options and results
//	render/         text boards and structured encoders
//	config/         viper-backed settings (file, env, defaults)
//	cmd/knighttour/ the cobra command line
//
// Quick example (5×5, corner to corner, shortest path only):
//
//	res, _ := tour.FindTours(ctx, 5, board.C(0, 0), board.C(4, 4), tour.WithStopAtFirst())
//	// res.Paths[0]: (0,0) (1,2) (0,4) (2,3) (4,4)
//
//	5  A3 .  .  .  E
//	4  .  .  A4 .  .
//	3  .  A2 .  .  .
//	2  .  .  .  .  .
//	1  S  .  .  .  .
//	   a  b  c  d  e
//
// See the board, reach and tour package docs for algorithms, complexity and
// error contracts.
package knighttour
