package render_test

import (
	"context"
	"os"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/render"
	"github.com/katalvlaran/knighttour/tour"
)

// ExampleBoard draws the eight shortest corner-to-corner paths of a 5×5 board.
// Each cell shows the first path through it and the step it is reached on.
func ExampleBoard() {
	res, _ := tour.FindTours(context.Background(), 5, board.C(0, 0), board.C(4, 4), tour.WithMaxMoves(4))
	_ = render.Board(os.Stdout, 5, board.C(0, 0), board.C(4, 4), res.Paths)

	// Output:
	// 5  A3 .  C3 .  E
	// 4  .  F3 A4 .  .
	// 3  E3 A2 .  B4 H3
	// 2  .  .  E2 D3 .
	// 1  S  .  B3 .  G3
	//    a  b  c  d  e
}
