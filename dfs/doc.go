// Package dfs implements depth-first search traversal and cycle detection on
// an undirected core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre-order and post-order hooks, cancellation
//     via context.Context, depth limiting and forest traversal.
//   - FindCycle: returns one simple cycle using vertex coloring
//     (White, Gray, Black) and the first back edge, or nil for a forest.
//   - IsForest: FindCycle reduced to a yes/no answer.
//
// Why:
//   - Confirm that tree-shaped topologies (line, star, k-ary tree, dumbbell)
//     are acyclic, independently of edge counting.
//   - Name a concrete offending cycle when they are not.
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V)
//   - FindCycle:  Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartNodeNotFound    start node not in graph
//   - ErrOptionViolation      negative MaxDepth
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
