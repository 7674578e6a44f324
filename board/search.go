package board

// FindPositions scans the whole grid in row-major order and returns every
// position currently holding value, in scan order. 0 is a legal target and
// yields every empty cell. The result is freshly allocated, never nil for
// a hit-free scan — an empty slice means "nowhere".
// Complexity: O(dim²).
func (b *Board) FindPositions(value int) []Position {
	found := make([]Position, 0)
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			if b.grid[r][c] == value {
				found = append(found, Position{Row: r, Col: c})
			}
		}
	}

	return found
}
