// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports hooks at two stages: OnEnqueue and OnVisit (may abort with an error).
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Connected(g) reports whether a graph is a single component.
//
// Why
//
//   - Tree depth labels and bell attachment points are checked against BFS
//     distances by package check.
//   - Connectivity separates well-formed topologies from broken fixtures.
//
// Determinism
//
//	core.Graph.Neighbors returns IDs in ascending order and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//	On a k-ary tree with breadth-first numbering the order is 0, 1, 2, ...
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E log Δ) (neighbors are sorted per visit)
//   - Memory: O(V)           (queue, Depth map, Parent map)
//
// Usage
//
//	result, err := bfs.BFS(
//	    g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 7 }),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrStartNodeNotFound  if the start node does not exist.
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors          if core.Neighbors fails for any node.
//   - ErrNoPath             from Result.PathTo for unreached nodes.
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs
