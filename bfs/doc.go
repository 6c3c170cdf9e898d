// Package bfs provides a level-synchronous breadth-first search over a dense
// integer vertex space, returning the first shortest path to a target.
//
// What
//
//   - Vertices are the integers [0,n). Successors come from a NeighborFunc.
//   - Each level (frontier) is expanded completely before the next one.
//   - The search stops the moment the target is first discovered.
//   - Returns a Result containing:
//   - Path: vertex ids from start to target inclusive
//   - Depth: edges on the path
//   - Expanded: how many vertices had their neighbors examined
//   - Supports functional hooks:
//   - OnEnqueue (when a vertex is first discovered)
//   - OnVisit   (before a vertex is expanded; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Storage
//
//	Discovered vertices live in a flat arena. Each arena entry stores the
//	arena index of its predecessor (-1 for the start), so back-references
//	never form cycles and never outlive the call. The visited set is a
//	[]bool of length n.
//
// Determinism
//
//	Frontier vertices are expanded in discovery order and neighbors in the
//	order NeighborFunc returns them. Among several shortest paths, the one
//	found is always the same for the same NeighborFunc.
//
// Complexity (V = n, E = total neighbors returned)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Search(64, 0, 63, next)
//	if err != nil {
//	    // ErrNilNeighbors, ErrVertexRange, ErrOptionViolation,
//	    // ErrExhausted, ErrDepthLimit, ctx.Err(), or a hook error
//	}
//	fmt.Println(res.Path, res.Depth)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit.
//   - WithContext(ctx):  set a custom context for cancellation.
//   - WithMaxDepth(d):   expand at most d levels (>0).
//   - WithOnEnqueue(fn): hook when a vertex is discovered.
//   - WithOnVisit(fn):   hook before expansion; returning error aborts.
//
// Errors
//
//   - ErrNilNeighbors     if the NeighborFunc is nil.
//   - ErrVertexRange      if start, target, or a returned neighbor is outside [0,n).
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrExhausted        if the frontier empties before the target is found.
//   - ErrDepthLimit       if MaxDepth levels were expanded without the target.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
