// Package verify decomposes a Sudoku grid into its constraint groups and
// checks them for rule violations. This file owns the decomposition:
// grid shape validation, the box partition, and the Groups function.
package verify

// BoxSize returns the box edge length for a grid of the given dimension:
// the integer square root of dim. A 9×9 grid has 3×3 boxes, a 16×16 grid
// 4×4 boxes. Returns ErrBoxPartition when dim is not a positive perfect
// square, since no whole-number partition exists then.
// Complexity: O(1).
func BoxSize(dim int) (int, error) {
	if dim < 1 {
		return 0, ErrBoxPartition
	}
	// Integer sqrt by walking up; dim is tiny, no float rounding to guard.
	box := 1
	for box*box < dim {
		box++
	}
	if box*box != dim {
		return 0, ErrBoxPartition
	}

	return box, nil
}

// shape validates that grid is a non-empty square with a box partition and
// returns its dimension and box edge.
// Returns ErrEmptyGrid, ErrNonSquare or ErrBoxPartition.
// Complexity: O(dim).
func shape(grid [][]int) (dim, box int, err error) {
	dim = len(grid)
	if dim == 0 || len(grid[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	for _, row := range grid {
		if len(row) != dim {
			return 0, 0, ErrNonSquare
		}
	}
	box, err = BoxSize(dim)
	if err != nil {
		return 0, 0, err
	}

	return dim, box, nil
}

// Groups decomposes grid into its three families of constraint groups:
//
//   - rows[i] is grid row i, in column order.
//   - cols[j] is grid column j, in row order.
//   - boxes[k] enumerates the boxes band by band: outer loop over row
//     bands, inner loop over column bands, and within one box cells are
//     listed row-major. For a 9×9 grid the bands are {0,1,2}, {3,4,5},
//     {6,7,8} on both axes, giving 9 boxes of 9 cells.
//
// The returned groups do not share storage with grid; mutating them after
// the call leaves the input untouched.
// Returns ErrEmptyGrid, ErrNonSquare or ErrBoxPartition on malformed input.
// Complexity: O(dim²) time and memory.
func Groups(grid [][]int) (rows, cols, boxes [][]int, err error) {
	dim, box, err := shape(grid)
	if err != nil {
		return nil, nil, nil, err
	}

	// Rows: copy each grid row as-is.
	rows = make([][]int, dim)
	for r := 0; r < dim; r++ {
		rows[r] = make([]int, dim)
		copy(rows[r], grid[r])
	}

	// Columns: transpose.
	cols = make([][]int, dim)
	for c := 0; c < dim; c++ {
		cols[c] = make([]int, dim)
		for r := 0; r < dim; r++ {
			cols[c][r] = grid[r][c]
		}
	}

	// Boxes: band by band, cells row-major within one box.
	boxes = make([][]int, 0, dim)
	for bandR := 0; bandR < dim; bandR += box {
		for bandC := 0; bandC < dim; bandC += box {
			cells := make([]int, 0, dim)
			for r := bandR; r < bandR+box; r++ {
				for c := bandC; c < bandC+box; c++ {
					cells = append(cells, grid[r][c])
				}
			}
			boxes = append(boxes, cells)
		}
	}

	return rows, cols, boxes, nil
}
