// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks.
//   - Memory: O(V) for the explicit stack and result maps.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartNodeNotFound    if start is missing (single-source mode).
//   - ErrOptionViolation      if an option value is invalid.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g. Neighbors are explored in ascending
// ID order, so the result is deterministic. With WithFullTraversal, start is
// ignored and every component is covered.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("DFS: %w", o.err)
	}

	if !o.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("DFS: %d: %w", start, ErrStartNodeNotFound)
	}

	nodes := g.Nodes()
	res := &Result{
		Order:   make([]int, 0, len(nodes)),
		Depth:   make(map[int]int, len(nodes)),
		Parent:  make(map[int]int, len(nodes)),
		Visited: make(map[int]bool, len(nodes)),
	}
	w := &walker{graph: g, opts: o, res: res}

	if !o.FullTraversal {
		if err := w.traverse(start); err != nil {
			return res, err
		}

		return res, nil
	}
	for _, v := range nodes {
		if res.Visited[v] {
			continue
		}
		if err := w.traverse(v); err != nil {
			return res, err
		}
	}

	return res, nil
}

// frame is one entry of the explicit DFS stack: a discovered node, its
// neighbors and the index of the next neighbor to try.
type frame struct {
	id, depth int
	nbs       []int
	next      int
}

// discover marks id as visited at depth, runs OnVisit and returns its neighbors.
func (w *walker) discover(id, depth int) ([]int, error) {
	select {
	case <-w.opts.Ctx.Done():
		return nil, w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			w.res.Order = nil

			return nil, fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		w.res.Order = nil

		return nil, fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
	}

	return nbs, nil
}

// traverse explores everything reachable from root with an explicit stack,
// so path length is bounded by memory rather than goroutine stack size.
func (w *walker) traverse(root int) error {
	nbs, err := w.discover(root, 0)
	if err != nil {
		return err
	}
	stack := []frame{{id: root, nbs: nbs}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.nbs) {
			nid := top.nbs[top.next]
			top.next++
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}
			w.res.Parent[nid] = top.id
			depth := top.depth + 1
			if nbs, err = w.discover(nid, depth); err != nil {
				return err
			}
			stack = append(stack, frame{id: nid, depth: depth, nbs: nbs})
			continue
		}

		if w.opts.OnExit != nil {
			if err = w.opts.OnExit(top.id); err != nil {
				w.res.Order = nil

				return fmt.Errorf("dfs: OnExit hook for %d: %w", top.id, err)
			}
		}
		w.res.Order = append(w.res.Order, top.id)
		stack = stack[:len(stack)-1]
	}

	return nil
}
