// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/Neighbors.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Neighbors() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v with an undirected edge. Missing endpoints are
// created (idempotent AddNode).
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Ensure endpoints via AddNode.
//  3. Lock muEdgeAdj, reject an existing pair.
//  4. Append the normalized Edge and mirror adjacency.
//
// Errors: ErrNegativeNodeID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrNegativeNodeID)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrLoopNotAllowed)
	}

	if err := g.AddNode(u); err != nil {
		return err
	}
	if err := g.AddNode(v); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacency[u][v]; dup {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	if u > v {
		u, v = v, u
	}
	g.edges = append(g.edges, Edge{From: u, To: v})
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}

	return nil
}

// HasEdge reports whether u and v are adjacent. Order of arguments is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns the IDs adjacent to id in ascending order.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	adj := g.adjacency[id]
	out := make([]int, 0, len(adj))
	for nbr := range adj {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out, nil
}
