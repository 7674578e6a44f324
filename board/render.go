package board

import (
	"strconv"
	"strings"
)

// String renders the grid for humans: cells joined by " | ", each row on
// its own line, rows separated by a dash rule sized to the grid width
// (4·dim−3 marks, the width of a rendered row of one-digit cells). There
// is no rule after the last row. Diagnostic output only, not a
// machine-readable format.
// Complexity: O(dim²).
func (b *Board) String() string {
	var sb strings.Builder
	rule := strings.Repeat(ruleMark, 4*b.dim-3)
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			sb.WriteString(strconv.Itoa(b.grid[r][c]))
			if c == b.dim-1 {
				sb.WriteString("\n")
			} else {
				sb.WriteString(cellSeparator)
			}
		}
		if r != b.dim-1 {
			sb.WriteString(rule)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
