package board

import (
	"fmt"
	"strings"
)

// Valid reports whether both coordinates lie in [0,7].
// Complexity: O(1).
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < Size && s.Rank >= 0 && s.Rank < Size
}

// Index maps s to the dense key File + 8*Rank.
// The result is meaningful only when s.Valid().
func (s Square) Index() int {
	return s.File + Size*s.Rank
}

// Add returns s displaced by o. The result may be off the board.
func (s Square) Add(o Offset) Square {
	return Square{File: s.File + o.DFile, Rank: s.Rank + o.DRank}
}

// String returns algebraic notation ("e4"), or "-" for an off-board square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+s.File, '1'+s.Rank)
}

// SquareAt converts a dense index back to a Square.
// Returns ErrOutOfRange if idx is not in [0,63].
func SquareAt(idx int) (Square, error) {
	if idx < 0 || idx >= Squares {
		return Square{}, fmt.Errorf("%w: %d", ErrOutOfRange, idx)
	}
	return Square{File: idx % Size, Rank: idx / Size}, nil
}

// ParseSquare parses algebraic notation such as "a1" or "H8".
func ParseSquare(s string) (Square, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if len(str) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	sq := Square{File: int(str[0]) - 'a', Rank: int(str[1]) - '1'}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	return sq, nil
}

// KnightOffsets returns the eight knight displacements in their fixed order:
// (2,1),(2,-1),(-2,1),(-2,-1),(1,2),(1,-2),(-1,2),(-1,-2).
// The returned slice is a copy.
func KnightOffsets() []Offset {
	out := make([]Offset, len(knightOffsets))
	copy(out, knightOffsets[:])
	return out
}

// KnightMoves returns the on-board squares a knight on s can reach,
// in KnightOffsets order. An off-board s has no moves.
// Complexity: O(1).
func KnightMoves(s Square) []Square {
	if !s.Valid() {
		return nil
	}
	moves := make([]Square, 0, len(knightOffsets))
	for _, o := range knightOffsets {
		if next := s.Add(o); next.Valid() {
			moves = append(moves, next)
		}
	}
	return moves
}

// IsKnightMove reports whether b is exactly one knight move away from a.
// Board bounds are not checked.
func IsKnightMove(a, b Square) bool {
	df, dr := b.File-a.File, b.Rank-a.Rank
	for _, o := range knightOffsets {
		if o.DFile == df && o.DRank == dr {
			return true
		}
	}
	return false
}
