package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/knightpath/bfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain returns neighbors for an undirected path 0–1–…–(n-1).
func chain(n int) bfs.NeighborFunc {
	return func(id int) []int {
		var out []int
		if id > 0 {
			out = append(out, id-1)
		}
		if id+1 < n {
			out = append(out, id+1)
		}
		return out
	}
}

// adjacency wraps a static adjacency list.
func adjacency(adj map[int][]int) bfs.NeighborFunc {
	return func(id int) []int { return adj[id] }
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(4, 0, 3, nil)
	assert.ErrorIs(t, err, bfs.ErrNilNeighbors)

	_, err = bfs.Search(4, -1, 3, chain(4))
	assert.ErrorIs(t, err, bfs.ErrVertexRange)

	_, err = bfs.Search(4, 0, 4, chain(4))
	assert.ErrorIs(t, err, bfs.ErrVertexRange)

	_, err = bfs.Search(0, 0, 0, chain(0))
	assert.ErrorIs(t, err, bfs.ErrVertexRange)

	_, err = bfs.Search(4, 0, 3, chain(4), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestSearch_StartIsTarget covers the zero-edge case.
func TestSearch_StartIsTarget(t *testing.T) {
	res, err := bfs.Search(4, 2, 2, chain(4))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, res.Path)
	assert.Equal(t, 0, res.Depth)
	assert.Equal(t, 0, res.Expanded)
}

func TestSearch_Chain(t *testing.T) {
	res, err := bfs.Search(6, 0, 5, chain(6))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Path)
	assert.Equal(t, 5, res.Depth)
}

// TestSearch_ShortestAndTieBreak builds two routes 0→3: 0–1–3 and 0–2–3.
// Neighbor order decides which is returned.
func TestSearch_ShortestAndTieBreak(t *testing.T) {
	adj := map[int][]int{
		0: {1, 2, 4},
		1: {0, 3},
		2: {0, 3},
		3: {1, 2},
		4: {0, 5},
		5: {4, 3},
	}
	res, err := bfs.Search(6, 0, 3, adjacency(adj))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, res.Path)

	adj[0] = []int{2, 1, 4}
	res, err = bfs.Search(6, 0, 3, adjacency(adj))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, res.Path)
}

// TestSearch_EarlyExit checks that nothing after the target's discovery is examined.
func TestSearch_EarlyExit(t *testing.T) {
	adj := map[int][]int{
		0: {1, 2, 3},
		1: {4},
		2: {5},
		3: {6},
	}
	var enq []int
	res, err := bfs.Search(7, 0, 2, adjacency(adj),
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, res.Path)
	// 3 is never discovered: the search stopped at 2
	assert.Equal(t, []int{0, 1, 2}, enq)
	assert.Equal(t, 1, res.Expanded)
}

func TestSearch_Exhausted(t *testing.T) {
	// two components: 0–1 and 2–3
	adj := map[int][]int{0: {1}, 1: {0}, 2: {3}, 3: {2}}
	_, err := bfs.Search(4, 0, 3, adjacency(adj))
	assert.ErrorIs(t, err, bfs.ErrExhausted)
}

func TestSearch_BadNeighbor(t *testing.T) {
	_, err := bfs.Search(3, 0, 2, func(int) []int { return []int{7} })
	assert.ErrorIs(t, err, bfs.ErrVertexRange)
}

// TestSearch_MaxDepth verifies the level limit for short, exact and zero (no limit) depths.
func TestSearch_MaxDepth(t *testing.T) {
	_, err := bfs.Search(10, 0, 5, chain(10), bfs.WithMaxDepth(3))
	assert.ErrorIs(t, err, bfs.ErrDepthLimit)

	res, err := bfs.Search(10, 0, 5, chain(10), bfs.WithMaxDepth(5))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Depth)

	res, err = bfs.Search(10, 0, 9, chain(10), bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, 9, res.Depth)
}

// TestSearch_Hooks asserts that hooks fire in level order with correct depths.
func TestSearch_Hooks(t *testing.T) {
	var enq, vis []string
	_, err := bfs.Search(4, 0, 3, chain(4),
		bfs.WithOnEnqueue(func(id, d int) { enq = append(enq, fmt.Sprintf("%d@%d", id, d)) }),
		bfs.WithOnVisit(func(id, d int) error { vis = append(vis, fmt.Sprintf("%d@%d", id, d)); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"0@0", "1@1", "2@2", "3@3"}, enq)
	assert.Equal(t, []string{"0@0", "1@1", "2@2"}, vis)
}

func TestSearch_VisitError(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.Search(4, 0, 3, chain(4),
		bfs.WithOnVisit(func(id, _ int) error {
			if id == 1 {
				return boom
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, boom)
}

// TestSearch_Cancellation verifies that a cancelled context halts the search.
func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Search(100, 0, 99, chain(100), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
