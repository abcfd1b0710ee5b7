package tour_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/tour"
)

// ExampleFindTours finds the two paths joining opposite corners of a 3×3
// board, whose outer ring is a single knight cycle.
func ExampleFindTours() {
	res, err := tour.FindTours(context.Background(), 3, board.C(0, 0), board.C(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status)
	for _, p := range res.Paths {
		fmt.Println(p.Moves(), p)
	}

	// Output:
	// success
	// 4 [(0,0) (1,2) (2,0) (0,1) (2,2)]
	// 4 [(0,0) (2,1) (0,2) (1,0) (2,2)]
}

// ExampleFindTours_stopAtFirst asks for one path; it is always a shortest one.
func ExampleFindTours_stopAtFirst() {
	res, _ := tour.FindTours(context.Background(), 8, board.C(0, 0), board.C(7, 7), tour.WithStopAtFirst())
	for _, c := range res.Paths[0] {
		fmt.Print(c.Algebraic(), " ")
	}
	fmt.Println("in", res.Paths[0].Moves(), "moves")

	// Output:
	// a1 b3 a5 b7 d6 f7 h8 in 6 moves
}

// ExampleSolve shows the request/response surface with a three-move budget.
func ExampleSolve() {
	resp := tour.Solve(context.Background(), tour.Request{
		BoardSize: 6,
		Start:     board.C(0, 0),
		End:       board.C(2, 1),
		Options:   tour.RequestOptions{MaxMoves: 3},
	})
	fmt.Println(resp.Status, len(resp.Paths))
	for _, p := range resp.Paths {
		fmt.Println(p)
	}

	resp = tour.Solve(context.Background(), tour.Request{BoardSize: 3, End: board.C(1, 1)})
	fmt.Println(resp.Status, len(resp.Paths))

	// Output:
	// success 2
	// [(0,0) (2,1)]
	// [(0,0) (1,2) (3,3) (2,1)]
	// no_tour_found 0
}
