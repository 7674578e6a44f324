package verify

import "sort"

// Check verifies grid against the Sudoku rules and reports a tagged Result.
//
// Stage 1 (Decompose): build the 3·dim constraint groups via Groups.
// Stage 2 (Completeness): scan the rows for a 0 cell; rows partition the
// whole grid, so a zero-free row set means a zero-free grid.
// Stage 3 (Duplicates): for every group, collect each non-zero value that
// occurs more than once in it; deduplicate across groups and sort.
// Stage 4 (Finalize): a non-empty duplicate set yields Kind == Conflicts
// and hides completeness; otherwise Kind == Completeness carries the flag.
//
// Returns ErrEmptyGrid, ErrNonSquare or ErrBoxPartition on malformed input;
// a well-formed grid never fails.
// Complexity: O(dim²) time and memory.
func Check(grid [][]int) (Result, error) {
	rows, cols, boxes, err := Groups(grid)
	if err != nil {
		return Result{}, err
	}

	// Completeness: any zero in any row means unfinished.
	complete := true
	for _, row := range rows {
		for _, v := range row {
			if v == 0 {
				complete = false
				break
			}
		}
		if !complete {
			break
		}
	}

	// Duplicates: count occurrences per group, keep repeated non-zero values.
	dup := make(map[int]struct{})
	counts := make(map[int]int, len(rows))
	for _, family := range [3][][]int{rows, cols, boxes} {
		for _, group := range family {
			clear(counts)
			for _, v := range group {
				counts[v]++
			}
			for v, n := range counts {
				if v != 0 && n > 1 {
					dup[v] = struct{}{}
				}
			}
		}
	}

	if len(dup) == 0 {
		return Result{Kind: Completeness, Complete: complete}, nil
	}

	values := make([]int, 0, len(dup))
	for v := range dup {
		values = append(values, v)
	}
	sort.Ints(values)

	return Result{Kind: Conflicts, Duplicates: values}, nil
}
