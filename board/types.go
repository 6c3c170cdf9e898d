// Package board defines the Square type, board dimensions, and sentinel
// errors for the board package.
package board

import "errors"

// Size is the number of files (and ranks) on the board.
const Size = 8

// Squares is the number of squares on the board.
const Squares = Size * Size

// Sentinel errors for board operations.
var (
	// ErrBadNotation indicates a string is not a valid algebraic square.
	ErrBadNotation = errors.New("board: invalid square notation")
	// ErrOutOfRange indicates an index outside [0, Squares).
	ErrOutOfRange = errors.New("board: square index out of range")
)

// Square is a board position. File 0 is the a-file, Rank 0 is the first rank.
// A Square may hold out-of-range coordinates; use Valid before indexing.
type Square struct {
	File, Rank int
}

// Offset is a (Δfile, Δrank) displacement.
type Offset struct {
	DFile, DRank int
}

// knightOffsets is the fixed expansion order; see KnightOffsets.
var knightOffsets = [8]Offset{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}
