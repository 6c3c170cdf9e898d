package board_test

import (
	"fmt"

	"github.com/katalvlaran/knightpath/board"
)

// ExampleKnightMoves lists the squares a knight on b1 attacks.
func ExampleKnightMoves() {
	from, err := board.ParseSquare("b1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(board.KnightMoves(from))
	// Output:
	// [d2 c3 a3]
}
