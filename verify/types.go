package verify

// Kind discriminates the two possible outcomes of Check.
//
//   - Completeness — no group holds a repeated non-zero value; the
//     Complete field answers whether every cell is filled.
//
//   - Conflicts — at least one group holds a repeated non-zero value;
//     the Duplicates field lists the offending values and completeness
//     is deliberately not reported.
type Kind int

const (
	// Completeness outcome: the grid is conflict-free; consult Result.Complete.
	Completeness Kind = iota

	// Conflicts outcome: the grid breaks a rule; consult Result.Duplicates.
	Conflicts
)

// Result is the tagged outcome of Check.
//
// Fields:
//   - Kind       — which of the two cases applies; switch on it first.
//   - Complete   — meaningful only when Kind == Completeness: true iff no
//     cell is empty.
//   - Duplicates — meaningful only when Kind == Conflicts: every value that
//     appears more than once within some row, column or box, deduplicated
//     across groups and sorted ascending. Where the conflicts sit is not
//     reported, only which values to fix.
//
// Example:
//
//	res, err := verify.Check(grid)
//	if err != nil {
//	  // handle ErrEmptyGrid, ErrNonSquare or ErrBoxPartition
//	}
//	switch res.Kind {
//	case verify.Conflicts:
//	  fmt.Println("fix these values:", res.Duplicates)
//	case verify.Completeness:
//	  fmt.Println("solved:", res.Complete)
//	}
type Result struct {
	Kind       Kind
	Complete   bool
	Duplicates []int
}
