// Package board defines the Board type, its move records, and sentinel
// errors for the board subpackage of github.com/katalvlaran/sudoku.
package board

import "errors"

// Sentinel errors for board operations. Callers match with errors.Is.
var (
	// ErrBadDimension indicates a requested dimension below 1 or an empty input grid.
	ErrBadDimension = errors.New("board: dimension must be at least 1")
	// ErrNonSquare indicates an input grid whose rows do not all span the row count.
	ErrNonSquare = errors.New("board: grid must have as many columns as rows")
	// ErrOutOfRange indicates a row or column index outside [0, dim).
	ErrOutOfRange = errors.New("board: cell index out of range")
)

// Rendering constants used by String.
const (
	// cellSeparator joins cells within one rendered row.
	cellSeparator = " | "
	// ruleMark is the character of the horizontal rule between rendered rows.
	ruleMark = "-"
)

// Position addresses one grid cell as a (row, column) pair.
type Position struct {
	Row, Col int
}

// Move is one recorded player action: the cell written, the value placed,
// and whether the entry was a provisional pencil mark rather than a
// committed number. A Move records intent only; applying or reverting the
// matching grid write is the caller's responsibility.
type Move struct {
	Pos    Position
	Value  int
	Pencil bool
}

// Board owns the grid contents and the move history of one puzzle session.
// The dimension is fixed at construction; there is no resize operation.
// A Board has no internal locking: one goroutine at a time.
type Board struct {
	dim   int
	grid  [][]int // row-major, dim rows of dim cells, 0 = empty
	moves []Move  // append-only, popped from the end for undo
}
