package verify

import "errors"

// Sentinel errors for verify operations. Callers match with errors.Is.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("verify: grid must have at least one row and one column")
	// ErrNonSquare indicates some row length differs from the row count.
	ErrNonSquare = errors.New("verify: grid must have as many columns as rows")
	// ErrBoxPartition indicates the dimension admits no whole-number box edge.
	ErrBoxPartition = errors.New("verify: dimension is not a perfect square")
)
