// Package board models the squares of a standard 8×8 chessboard and the
// moves a knight can make between them.
//
// What
//
//   - Square: a (File, Rank) pair, each in [0,7]. a1 is {0,0}, h8 is {7,7}.
//   - Index / SquareAt: the dense key File + 8*Rank and its inverse.
//   - KnightOffsets: the eight (Δfile, Δrank) pairs, in a fixed order.
//   - KnightMoves: in-range destinations of a square, in offset order.
//   - ParseSquare / Square.String: algebraic notation.
//
// Determinism
//
//	KnightOffsets never changes order. Every search built on KnightMoves
//	therefore breaks ties between equal-length paths the same way.
//
// Errors
//
//   - ErrBadNotation  if a string is not a square such as "e4".
//   - ErrOutOfRange   if an index lies outside [0,63].
package board
