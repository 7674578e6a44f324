package board_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sudoku/board"
)

// randomBoard builds a dim×dim board with deterministic random values in [0, dim].
func randomBoard(b *testing.B, dim int) *board.Board {
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, dim)
	for r := 0; r < dim; r++ {
		row := make([]int, dim)
		for c := 0; c < dim; c++ {
			row[c] = rng.Intn(dim + 1)
		}
		grid[r] = row
	}
	bd, err := board.FromGrid(grid)
	if err != nil {
		b.Fatalf("setup FromGrid failed: %v", err)
	}

	return bd
}

// BenchmarkFindPositions measures a full row-major scan of a 9×9 board.
// Complexity: O(dim²)
func BenchmarkFindPositions(b *testing.B) {
	bd := randomBoard(b, 9)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bd.FindPositions(5)
	}
}

// BenchmarkSetCell measures a single bounds-checked cell write.
// Complexity: O(1)
func BenchmarkSetCell(b *testing.B) {
	bd := randomBoard(b, 9)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bd.SetCell(4, 4, 7)
	}
}

// BenchmarkString measures rendering of a 9×9 board.
// Complexity: O(dim²)
func BenchmarkString(b *testing.B) {
	bd := randomBoard(b, 9)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bd.String()
	}
}
