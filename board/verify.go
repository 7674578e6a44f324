package board

import "github.com/katalvlaran/sudoku/verify"

// Verify runs the constraint checker against the current grid and returns
// its tagged Result: completeness when no group holds a repeated non-zero
// value, otherwise the sorted set of duplicated values. The board itself
// is never mutated.
// Returns verify.ErrBoxPartition when the dimension is not a perfect
// square; a board of supported dimension never fails.
// Complexity: O(dim²).
func (b *Board) Verify() (verify.Result, error) {
	return verify.Check(b.grid)
}
