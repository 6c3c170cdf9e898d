// Package bfs provides tunable options, sentinel errors and the result type
// for level-synchronous breadth-first search over a dense vertex space.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrVertexRange is returned when start, target, or a neighbor id lies outside [0,n).
	ErrVertexRange = errors.New("bfs: vertex id out of range")

	// ErrNilNeighbors is returned if a nil NeighborFunc is passed.
	ErrNilNeighbors = errors.New("bfs: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrExhausted is returned when the frontier empties before the target is found.
	ErrExhausted = errors.New("bfs: search exhausted without reaching target")

	// ErrDepthLimit is returned when MaxDepth levels were expanded without reaching the target.
	ErrDepthLimit = errors.New("bfs: depth limit reached")
)

// NeighborFunc returns the successors of id. The order of the returned slice
// is the expansion order, so it decides which of several equal-length paths
// is found.
type NeighborFunc func(id int) []int

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is first discovered,
	// with its depth from the start.
	OnEnqueue func(id int, depth int)

	// OnVisit is called before a frontier vertex is expanded. If it returns
	// an error, the search aborts and propagates that error.
	OnVisit func(id int, depth int) error

	// MaxDepth, if > 0, bounds the number of levels expanded.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a vertex is discovered.
func WithOnEnqueue(fn func(id int, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run before a vertex is expanded;
// returning an error from this callback stops the search.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits how many levels are expanded.
//
//	d > 0: expand at most d levels (paths of up to d edges)
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a successful search:
//   - Path: vertex ids from start to target inclusive.
//   - Depth: number of edges on Path (len(Path)-1).
//   - Expanded: number of frontier vertices whose neighbors were examined.
type Result struct {
	Path     []int
	Depth    int
	Expanded int
}

// node is one discovered vertex. parent indexes the arena; -1 marks the start.
type node struct {
	id     int
	parent int
}
