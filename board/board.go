package board

import "fmt"

// New constructs an empty Board of the given dimension: every cell 0,
// no recorded moves.
// Returns ErrBadDimension when dim < 1.
// Complexity: O(dim²) time and memory.
func New(dim int) (*Board, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}
	grid := make([][]int, dim)
	for r := 0; r < dim; r++ {
		grid[r] = make([]int, dim)
	}

	return &Board{dim: dim, grid: grid}, nil
}

// FromGrid constructs a Board pre-populated from a caller-supplied grid.
// The dimension is the row count and every row must span it. The input is
// deep-copied: mutating it afterwards leaves the board untouched.
// Returns ErrBadDimension for an empty grid, ErrNonSquare otherwise.
// Complexity: O(dim²) time and memory.
func FromGrid(grid [][]int) (*Board, error) {
	dim := len(grid)
	if dim == 0 || len(grid[0]) == 0 {
		return nil, ErrBadDimension
	}
	for _, row := range grid {
		if len(row) != dim {
			return nil, ErrNonSquare
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, dim)
	for r := 0; r < dim; r++ {
		cells[r] = make([]int, dim)
		copy(cells[r], grid[r])
	}

	return &Board{dim: dim, grid: cells}, nil
}

// Clone returns an independent deep copy of the board: grid and move
// history share no storage with the receiver.
// Complexity: O(dim² + moves).
func (b *Board) Clone() *Board {
	grid := make([][]int, b.dim)
	for r := 0; r < b.dim; r++ {
		grid[r] = make([]int, b.dim)
		copy(grid[r], b.grid[r])
	}
	moves := make([]Move, len(b.moves))
	copy(moves, b.moves)

	return &Board{dim: b.dim, grid: grid, moves: moves}
}

// Dimension returns the fixed board size set at construction.
// Complexity: O(1).
func (b *Board) Dimension() int {
	return b.dim
}

// Grid returns the live backing grid, not a defensive copy. Writing
// through the returned slices is a supported pattern mirrored by SetCell,
// minus the bounds checking; the board stays the single owner.
// Complexity: O(1).
func (b *Board) Grid() [][]int {
	return b.grid
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.dim && col >= 0 && col < b.dim
}

// cellErrorf wraps ErrOutOfRange with method and index context.
func cellErrorf(method string, row, col int) error {
	return fmt.Errorf("Board.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
}

// Cell returns the value stored at (row, col).
// Returns ErrOutOfRange when the indices miss the grid.
// Complexity: O(1).
func (b *Board) Cell(row, col int) (int, error) {
	if !b.InBounds(row, col) {
		return 0, cellErrorf("Cell", row, col)
	}

	return b.grid[row][col], nil
}

// SetCell overwrites the value at (row, col). The value range is not
// validated here; rule checking is deferred to the verify package.
// Returns ErrOutOfRange when the indices miss the grid.
// Complexity: O(1).
func (b *Board) SetCell(row, col, value int) error {
	if !b.InBounds(row, col) {
		return cellErrorf("SetCell", row, col)
	}
	b.grid[row][col] = value

	return nil
}
