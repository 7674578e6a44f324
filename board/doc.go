// Package board stores the state of one Sudoku puzzle instance: a square
// grid of cell values and the ordered history of the player's moves.
//
// What:
//
//   - Board wraps a dim×dim [][]int grid; 0 marks an empty cell.
//   - New builds an empty board, FromGrid deep-copies a caller grid.
//   - Cell/SetCell read and write single cells with bounds checking.
//   - RecordMove/PopLastMove keep an append-only move log with LIFO undo.
//   - FindPositions locates every cell holding a value, row-major.
//   - String renders the grid with " | " separators and dash rules.
//   - Verify forwards the current grid to the verify package.
//
// Why:
//
//   - Game controllers: one owner for grid state and undo history.
//   - Puzzle loaders: hand an initial grid to FromGrid and forget it —
//     the board never aliases caller memory at construction.
//
// Complexity:
//
//   - Construction, Clone, FindPositions, String, Verify: O(dim²).
//   - Cell, SetCell, RecordMove, PopLastMove, Dimension: O(1).
//
// Contract notes:
//
//   - Grid returns the live backing slices, a deliberate mutable borrow:
//     writing through it is equivalent to SetCell without bounds checks.
//   - SetCell does not validate the value range; rule checking belongs to
//     verify, so a controller may stage any value and check later.
//   - RecordMove never touches the grid and PopLastMove never reverts it;
//     pairing a move with its grid write is the caller's job, which is what
//     lets pencil marks be logged without being committed.
//
// Errors:
//
//   - ErrBadDimension: requested dimension below 1, or an empty input grid.
//   - ErrNonSquare: input grid rows of differing length, or not dim rows
//     of dim cells.
//   - ErrOutOfRange: a row or column index outside [0, dim).
//
// A Board is not safe for concurrent use; callers serialize access.
package board
