// Package verify checks a Sudoku grid against the rules of the game:
// every row, column and box must contain each non-zero value at most once.
//
// What:
//
//   - Groups decomposes a dim×dim grid into its 3·dim constraint groups
//     (dim rows + dim columns + dim boxes), each a slice of dim values.
//   - Check reports either completeness (no empty cell anywhere) or the
//     exact sorted set of values that appear more than once in some group.
//   - BoxSize derives the box edge from the grid dimension (3 for 9×9).
//
// Why:
//
//   - Game controllers: decide win state, highlight the offending values.
//   - Puzzle tooling: reject malformed grids before solving or rating.
//
// Complexity:
//
//   - Groups:  O(dim²) time, O(dim²) memory (groups do not alias the input).
//   - Check:   O(dim²) time, O(dim²) memory.
//   - BoxSize: O(1).
//
// Semantics:
//
//   - 0 marks an empty cell; it never counts as a duplicate.
//   - Completeness is decided by scanning rows for zeros only; rows
//     partition the full grid, so row-completeness equals grid-completeness.
//   - A non-empty duplicate set suppresses the completeness answer: callers
//     switch on Result.Kind, not on both fields at once.
//
// Errors:
//
//   - ErrEmptyGrid: the grid has no rows or no columns.
//   - ErrNonSquare: some row length differs from the row count.
//   - ErrBoxPartition: the dimension has no whole-number box edge
//     (supported dimensions are perfect squares: 1, 4, 9, 16, ...).
//
// verify holds no state: every function is a pure function of its input.
package verify
