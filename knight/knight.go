package knight

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/knightpath/bfs"
	"github.com/katalvlaran/knightpath/board"
)

// ErrSearchExhausted reports that the search emptied its frontier without
// reaching the destination on in-range input. It wraps bfs.ErrExhausted.
var ErrSearchExhausted = fmt.Errorf("knight: %w", bfs.ErrExhausted)

// neighbors adapts board.KnightMoves to dense square indices.
func neighbors(idx int) []int {
	sq, err := board.SquareAt(idx)
	if err != nil {
		return nil
	}
	moves := board.KnightMoves(sq)
	out := make([]int, len(moves))
	for i, m := range moves {
		out[i] = m.Index()
	}
	return out
}

// FindPath returns a shortest knight path from start to end, both inclusive.
// A nil path with a nil error means no path: one of the squares is off the board.
// Extra options (context, hooks, depth limit) are passed through to bfs.Search.
func FindPath(start, end board.Square, opts ...bfs.Option) ([]board.Square, error) {
	if !start.Valid() || !end.Valid() {
		return nil, nil
	}
	if start == end {
		return []board.Square{start}, nil
	}

	return search(start, end, neighbors, opts...)
}

// search runs the board search with the given move generator.
func search(start, end board.Square, next bfs.NeighborFunc, opts ...bfs.Option) ([]board.Square, error) {
	res, err := bfs.Search(board.Squares, start.Index(), end.Index(), next, opts...)
	if err != nil {
		if errors.Is(err, bfs.ErrExhausted) {
			return nil, fmt.Errorf("%w: %v → %v", ErrSearchExhausted, start, end)
		}
		return nil, fmt.Errorf("knight: %v → %v: %w", start, end, err)
	}

	path := make([]board.Square, len(res.Path))
	for i, idx := range res.Path {
		// indices come from neighbors, so they are on the board
		path[i], _ = board.SquareAt(idx)
	}

	return path, nil
}

// Distance returns the minimum number of knight moves from start to end.
// ok is false when either square is off the board.
func Distance(start, end board.Square) (moves int, ok bool, err error) {
	path, err := FindPath(start, end)
	if err != nil {
		return 0, false, err
	}
	if path == nil {
		return 0, false, nil
	}
	return len(path) - 1, true, nil
}
