package board

// RecordMove appends one move to the history. The grid is not touched:
// a controller that wants the move to take effect calls SetCell itself,
// and one that is only logging a pencil mark does not.
// Returns ErrOutOfRange when the position misses the grid.
// Complexity: O(1) amortized.
func (b *Board) RecordMove(pos Position, value int, pencil bool) error {
	if !b.InBounds(pos.Row, pos.Col) {
		return cellErrorf("RecordMove", pos.Row, pos.Col)
	}
	b.moves = append(b.moves, Move{Pos: pos, Value: value, Pencil: pencil})

	return nil
}

// PopLastMove removes and returns the most recently recorded move.
// The second return is false when the history is empty — a normal
// condition, not an error. The grid is not reverted; undoing the matching
// cell write is the caller's job.
// Complexity: O(1).
func (b *Board) PopLastMove() (Move, bool) {
	if len(b.moves) == 0 {
		return Move{}, false
	}
	last := b.moves[len(b.moves)-1]
	b.moves = b.moves[:len(b.moves)-1]

	return last, true
}

// MoveCount returns how many moves the history currently holds.
// Complexity: O(1).
func (b *Board) MoveCount() int {
	return len(b.moves)
}

// Moves returns a copy of the move history, oldest first. The copy does
// not share storage with the board; mutating it changes nothing.
// Complexity: O(moves).
func (b *Board) Moves() []Move {
	out := make([]Move, len(b.moves))
	copy(out, b.moves)

	return out
}
