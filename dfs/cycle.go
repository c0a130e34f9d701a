// Package dfs: cycle detection for undirected simple graphs.
//
// FindCycle runs a three-color DFS over every component and stops at the
// first back edge, reconstructing the cycle from the parent chain. It does
// not enumerate all cycles: a full mesh has exponentially many.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/core"
)

// FindCycle returns one simple cycle of g, or nil if g is a forest.
//
// The cycle starts at the node where the back edge closes and follows tree
// edges from there, e.g. [0 1 2] for a triangle. Roots are tried in
// ascending ID order and neighbors in ascending order, so the result is
// deterministic.
func FindCycle(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nodes := g.Nodes()
	state := make(map[int]int, len(nodes))
	parent := make(map[int]int, len(nodes))

	for _, v := range nodes {
		if state[v] != White {
			continue
		}
		parent[v] = -1
		cycle, err := visit(g, v, state, parent)
		if err != nil {
			return nil, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if cycle != nil {
			return cycle, nil
		}
	}

	return nil, nil
}

// IsForest reports whether g is acyclic.
func IsForest(g *core.Graph) (bool, error) {
	cycle, err := FindCycle(g)
	if err != nil {
		return false, err
	}

	return cycle == nil, nil
}

// visit explores the component of root; the edge back to a node's DFS
// parent is not a cycle.
func visit(g *core.Graph, root int, state, parent map[int]int) ([]int, error) {
	nbs, err := g.Neighbors(root)
	if err != nil {
		return nil, fmt.Errorf("Neighbors(%d): %w", root, err)
	}
	state[root] = Gray
	stack := []frame{{id: root, nbs: nbs}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbs) {
			state[top.id] = Black
			stack = stack[:len(stack)-1]
			continue
		}
		nbr := top.nbs[top.next]
		top.next++
		if nbr == parent[top.id] {
			continue
		}
		switch state[nbr] {
		case White:
			parent[nbr] = top.id
			if nbs, err = g.Neighbors(nbr); err != nil {
				return nil, fmt.Errorf("Neighbors(%d): %w", nbr, err)
			}
			state[nbr] = Gray
			stack = append(stack, frame{id: nbr, nbs: nbs})
		case Gray:
			return unwind(nbr, top.id, parent), nil
		}
	}

	return nil, nil
}

// unwind walks parents from tail back to head and returns head..tail.
func unwind(head, tail int, parent map[int]int) []int {
	var rev []int
	for v := tail; v != head; v = parent[v] {
		rev = append(rev, v)
	}
	rev = append(rev, head)

	cycle := make([]int, len(rev))
	for i, v := range rev {
		cycle[len(rev)-1-i] = v
	}

	return cycle
}
