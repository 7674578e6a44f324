// Package sudoku is an in-memory model of a Sudoku puzzle in progress —
// the grid, the player's move history, and the rule checker that decides
// whether the grid is finished and conflict-free.
//
// What is sudoku?
//
//	A small, deterministic, zero-side-effect library that brings together:
//		• Board store: a dim×dim grid of cells, bounds-checked reads & writes
//		• Move history: append-only (pos, value, pencil) records with LIFO undo
//		• Constraint groups: rows, columns and boxes derived from one grid
//		• Verification: completeness plus the exact set of conflicting values
//
// Why choose sudoku?
//
//   - Minimal API, clear naming — a game controller wires it in minutes
//   - Deterministic results — conflict sets come back sorted, always
//   - Pure Go — no cgo, no hidden deps, no global state
//   - Honest errors — sentinel errors matched with errors.Is, never panics
//
// Everything is organized under two subpackages:
//
//	board/  — the Board type: grid storage, cell access, moves, rendering
//	verify/ — pure functions over a [][]int grid: Groups, Check, BoxSize
//
// Quick ASCII example (a 4×4 board mid-game, 0 = empty):
//
//	1 | 2 | 0 | 4
//	-------------
//	3 | 4 | 1 | 2
//	-------------
//	2 | 1 | 4 | 3
//	-------------
//	4 | 3 | 2 | 0
//
// Puzzle generation, solving and any UI or persistence layer live outside
// this module; they talk to it only through board and verify.
//
//	go get github.com/katalvlaran/sudoku
package sudoku
