// Package knight finds a shortest sequence of knight moves between two
// squares of a standard 8×8 chessboard.
//
// FindPath runs a level-synchronous breadth-first search over the 64
// squares (see package bfs), expanding knight moves in the fixed order of
// board.KnightOffsets. The first time the destination is discovered the
// search stops, so the returned path has minimum length and, among ties,
// is always the same one.
//
// Outcomes
//
//   - Either square off the board: nil path, nil error ("no path").
//   - start == end: the one-element path [start].
//   - Otherwise: start … end, each step a legal knight move.
//   - ErrSearchExhausted: the search ran out of squares. The knight graph
//     on 8×8 is connected, so this only signals a broken move table or
//     visited set, and is reported loudly rather than as "no path".
//
// Example
//
//	path, err := knight.FindPath(board.Square{0, 0}, board.Square{7, 7})
//	// len(path) == 7: six moves
package knight
