// Package bfs provides a level-synchronous breadth-first search over a dense
// vertex space [0,n), returning the first shortest path found to a target.
//
// Discovered vertices are stored in a flat arena; each records the arena
// index of the vertex it was reached from. A path is rebuilt by walking
// those indices back to the start and reversing.
package bfs

import (
	"fmt"
)

// walker encapsulates mutable search state.
type walker struct {
	n       int
	target  int
	next    NeighborFunc
	opts    Options
	arena   []node
	visited []bool
	res     *Result
}

// Search runs breadth-first search over vertices [0,n) from start to target,
// expanding each vertex's neighbors in the order next returns them.
// The search stops the moment target is first discovered.
//
// Returns ErrNilNeighbors or ErrVertexRange for invalid input,
// ErrOptionViolation for bad options, ErrExhausted if target is unreachable,
// ErrDepthLimit if MaxDepth was hit, ctx.Err() on cancellation,
// or a wrapped OnVisit error.
// Complexity: O(V + E) time, O(V) memory.
func Search(n, start, target int, next NeighborFunc, opts ...Option) (*Result, error) {
	if next == nil {
		return nil, ErrNilNeighbors
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if n <= 0 || start < 0 || start >= n || target < 0 || target >= n {
		return nil, fmt.Errorf("%w: start=%d target=%d n=%d", ErrVertexRange, start, target, n)
	}

	// start == target needs no search
	if start == target {
		return &Result{Path: []int{start}}, nil
	}

	w := &walker{
		n:       n,
		target:  target,
		next:    next,
		opts:    o,
		arena:   make([]node, 0, n),
		visited: make([]bool, n),
		res:     &Result{},
	}

	return w.res, w.loop(w.discover(start, -1, 0))
}

// discover marks id visited, appends it to the arena and returns its index.
func (w *walker) discover(id, parent, depth int) int {
	w.visited[id] = true
	w.arena = append(w.arena, node{id: id, parent: parent})
	w.opts.OnEnqueue(id, depth)

	return len(w.arena) - 1
}

// loop expands one frontier per iteration until target is found or the
// frontier is empty.
func (w *walker) loop(root int) error {
	frontier := []int{root}
	for depth := 0; len(frontier) > 0; depth++ {
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			return fmt.Errorf("%w: %d", ErrDepthLimit, w.opts.MaxDepth)
		}
		nextFrontier := make([]int, 0, len(frontier)*2)
		for _, idx := range frontier {
			// cancellation check (once per expanded vertex)
			select {
			case <-w.opts.Ctx.Done():
				return w.opts.Ctx.Err()
			default:
			}

			found, err := w.expand(idx, depth, &nextFrontier)
			if err != nil {
				return err
			}
			if found >= 0 {
				w.res.Path = w.pathFrom(found)
				w.res.Depth = depth + 1
				return nil
			}
		}
		frontier = nextFrontier
	}

	return fmt.Errorf("%w: %d vertices discovered", ErrExhausted, len(w.arena))
}

// expand examines the neighbors of arena[idx]. It returns the arena index of
// target if discovered, otherwise -1 after appending new vertices to frontier.
func (w *walker) expand(idx, depth int, frontier *[]int) (int, error) {
	id := w.arena[idx].id
	if err := w.opts.OnVisit(id, depth); err != nil {
		return -1, fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}
	w.res.Expanded++

	for _, nbr := range w.next(id) {
		if nbr < 0 || nbr >= w.n {
			return -1, fmt.Errorf("%w: neighbor %d of %d", ErrVertexRange, nbr, id)
		}
		if w.visited[nbr] {
			continue
		}
		child := w.discover(nbr, idx, depth+1)
		if nbr == w.target {
			return child, nil
		}
		*frontier = append(*frontier, child)
	}

	return -1, nil
}

// pathFrom walks parent indices from arena[idx] back to the start
// and returns the ids in start → idx order.
func (w *walker) pathFrom(idx int) []int {
	path := []int{}
	for cur := idx; cur >= 0; cur = w.arena[cur].parent {
		path = append(path, w.arena[cur].id)
	}
	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
