// Package board describes the knight-move topology of an N×N chessboard.
//
// What:
//
//   - Coordinate is a zero-based (X, Y) cell; structural equality.
//   - Board bounds coordinate validity (0 ≤ X, Y < N) and maps cells to
//     row-major indices for dense per-cell tables.
//   - Offsets is the fixed table of the eight knight displacements.
//   - LegalMoves applies the offsets to a cell and keeps on-board destinations.
//
// Why:
//
//   - Tour and reachability searches need a pure, allocation-light neighbour
//     function with a deterministic enumeration order, so that search results are
//     reproducible for the same inputs.
//
// Complexity:
//
//   - LegalMoves, Degree:   O(1) time (at most 8 candidates), O(1) memory.
//   - Index, Coordinate:    O(1).
//   - Cells:                O(N²).
//
// Errors:
//
//   - ErrInvalidBoardSize:  board size below 1.
//   - ErrInvalidCoordinate: a cell outside [0, N)².
//   - ErrParseCoordinate:   text that is neither "x,y" nor algebraic ("c4").
//
// Board holds no per-cell state, so a single value may be shared freely by
// concurrent searches. Visited marking belongs to the search, not the board.
package board
