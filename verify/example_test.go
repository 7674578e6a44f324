// File: verify/example_test.go
package verify_test

import (
	"fmt"

	"github.com/katalvlaran/sudoku/verify"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Check
////////////////////////////////////////////////////////////////////////////////

// ExampleCheck demonstrates the two outcomes of verification on a 4×4 grid.
// Scenario:
//
//   - First grid: finished and rule-abiding → Completeness, Complete=true
//   - Second grid: the top-left box holds 1 twice → Conflicts, Duplicates=[1]
//
// Complexity: O(dim²)
func ExampleCheck() {
	solved := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	res, _ := verify.Check(solved)
	fmt.Println("kind:", res.Kind, "complete:", res.Complete)

	broken := [][]int{
		{1, 2, 3, 4},
		{3, 1, 0, 2},
		{2, 0, 4, 3},
		{4, 3, 2, 0},
	}
	res, _ = verify.Check(broken)
	fmt.Println("kind:", res.Kind, "duplicates:", res.Duplicates)

	// Output:
	// kind: 0 complete: true
	// kind: 1 duplicates: [1]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Groups
////////////////////////////////////////////////////////////////////////////////

// ExampleGroups lists the box decomposition of a 4×4 grid: bands {0,1} and
// {2,3} on both axes, four boxes of four cells each.
func ExampleGroups() {
	grid := [][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	_, _, boxes, _ := verify.Groups(grid)
	for i, box := range boxes {
		fmt.Printf("box %d: %v\n", i, box)
	}

	// Output:
	// box 0: [1 2 5 6]
	// box 1: [3 4 7 8]
	// box 2: [9 10 13 14]
	// box 3: [11 12 15 16]
}
