// File: board/example_test.go
package board_test

import (
	"fmt"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/verify"
)

////////////////////////////////////////////////////////////////////////////////
// Example: String
////////////////////////////////////////////////////////////////////////////////

// ExampleBoard_String renders a small board for diagnostics.
// Scenario:
//
//   - A 3×3 grid with a few cells filled, 0 = empty
//   - Cells joined by " | ", rows separated by a dash rule
//
// Complexity: O(dim²)
func ExampleBoard_String() {
	b, _ := board.FromGrid([][]int{
		{1, 0, 3},
		{0, 5, 0},
		{7, 0, 9},
	})
	fmt.Print(b)

	// Output:
	// 1 | 0 | 3
	// ---------
	// 0 | 5 | 0
	// ---------
	// 7 | 0 | 9
}

////////////////////////////////////////////////////////////////////////////////
// Example: moves and undo
////////////////////////////////////////////////////////////////////////////////

// ExampleBoard_PopLastMove walks the record/commit/undo cycle a game
// controller runs: log the move, write the cell, then take both back.
func ExampleBoard_PopLastMove() {
	b, _ := board.New(9)

	pos := board.Position{Row: 4, Col: 4}
	_ = b.RecordMove(pos, 5, false)
	_ = b.SetCell(pos.Row, pos.Col, 5)

	if m, ok := b.PopLastMove(); ok {
		_ = b.SetCell(m.Pos.Row, m.Pos.Col, 0) // revert is the caller's job
		fmt.Printf("undid %d at (%d,%d), pencil=%v\n", m.Value, m.Pos.Row, m.Pos.Col, m.Pencil)
	}
	_, ok := b.PopLastMove()
	fmt.Println("more moves:", ok)

	// Output:
	// undid 5 at (4,4), pencil=false
	// more moves: false
}

////////////////////////////////////////////////////////////////////////////////
// Example: Verify
////////////////////////////////////////////////////////////////////////////////

// ExampleBoard_Verify checks a 4×4 board that holds a duplicated 2 in its
// top-left box and reports the offending value.
func ExampleBoard_Verify() {
	b, _ := board.FromGrid([][]int{
		{1, 2, 3, 4},
		{3, 2, 1, 0},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})

	res, _ := b.Verify()
	switch res.Kind {
	case verify.Conflicts:
		fmt.Println("fix these values:", res.Duplicates)
	case verify.Completeness:
		fmt.Println("solved:", res.Complete)
	}

	// Output:
	// fix these values: [2]
}
