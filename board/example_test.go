// File: board/example_test.go
package board_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knighttour/board"
)

// ExampleLegalMoves lists the knight destinations from b1 on a standard board,
// in the fixed offset order.
func ExampleLegalMoves() {
	from, _ := board.ParseCoordinate("b1")
	var names []string
	for _, c := range board.LegalMoves(8, from) {
		names = append(names, c.Algebraic())
	}
	fmt.Println(strings.Join(names, " "))

	// Output:
	// a3 c3 d2
}

// ExampleBoard_Degree prints the knight degree of every cell of a 4×4 board,
// top row first.
func ExampleBoard_Degree() {
	b := board.MustBoard(4)
	for y := b.Size() - 1; y >= 0; y-- {
		row := make([]int, b.Size())
		for x := range row {
			row[x] = b.Degree(board.C(x, y))
		}
		fmt.Println(strings.Trim(fmt.Sprint(row), "[]"))
	}

	// Output:
	// 2 3 3 2
	// 3 4 4 3
	// 3 4 4 3
	// 2 3 3 2
}
