// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting and
// full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

// Node visitation states.
const (
	White = iota // not visited yet
	Gray         // on the DFS stack
	Black        // it and all its descendants are fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start node does not exist.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrOptionViolation indicates an invalid option value (e.g. negative MaxDepth).
	ErrOptionViolation = errors.New("dfs: option violation")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order), before it is appended to Result.Order.
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal restarts DFS from every unvisited node in ascending ID
	// order, covering disconnected components.
	FullTraversal bool

	err error
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. A negative limit yields ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDepth = limit
	}
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []int

	// Depth maps each reached node to its DFS tree depth.
	Depth map[int]int

	// Parent maps each reached node to the node it was discovered from.
	// Roots of DFS trees are absent.
	Parent map[int]int

	// Visited flags which nodes were reached.
	Visited map[int]bool
}
