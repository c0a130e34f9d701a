// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_k_ary_tree.go - implementation of KAryTreeTopology(k, h).
//
// Contract:
//   • k ≥ 1 and h ≥ 1 (else ErrInvalidArgument).
//   • Breadth-first numbering: root is 0, children of v are k·v+1 .. k·v+k,
//     parent of v>0 is (v-1)/k. Depth-d nodes occupy a contiguous ID range.
//   • Every node carries "type" ∈ {root, intermediate, leaf} and "depth".
//   • Emits edge (parent(v), v) for v = 1..N-1 in increasing order, so every
//     edge (u, v) with u < v satisfies depth(v) = depth(u)+1.
//   • Sizes whose node count overflows int are rejected with ErrInvalidArgument.
//
// Complexity:
//   • Time: O(N) nodes + O(N-1) edges, N = Σ_{d=0..h} k^d.
//   • Space: O(1) extra.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtopo/core"
)

// KAryTreeTopology returns the complete k-ary tree of height h.
// Node count = Σ_{d=0..h} k^d, edge count = node count - 1.
func KAryTreeTopology(k, h int) (*core.Graph, error) {
	if err := validateMin(MethodKAryTree, "k", k, MinTreeArity); err != nil {
		return nil, err
	}
	if err := validateMin(MethodKAryTree, "h", h, MinTreeHeight); err != nil {
		return nil, err
	}
	total, ok := treeSize(k, h)
	if !ok {
		return nil, builderErrorf(MethodKAryTree, ErrInvalidArgument, "k=%d h=%d: node count overflows int", k, h)
	}

	params := []core.Param{{Name: "k", Value: k}, {Name: "h", Value: h}}

	return build(KindKAryTree, params, total, func(g *core.Graph) error {
		if err := addTreeNode(g, RootNodeID, core.TypeRoot, 0); err != nil {
			return err
		}

		var (
			depth, first, width, v int
			typ                    string
		)
		// first is the lowest ID at depth, width = k^depth.
		first, width = 1, k
		for depth = 1; depth <= h; depth++ {
			typ = core.TypeIntermediate
			if depth == h {
				typ = core.TypeLeaf
			}
			for v = first; v < first+width; v++ {
				if err := addTreeNode(g, v, typ, depth); err != nil {
					return err
				}
				if err := g.AddEdge((v-1)/k, v); err != nil {
					return fmt.Errorf("%s: %w", MethodKAryTree, err)
				}
			}
			first += width
			width *= k
		}

		return nil
	})
}

// addTreeNode inserts id with its role label and depth.
func addTreeNode(g *core.Graph, id int, typ string, depth int) error {
	if err := addNodes(g, MethodKAryTree, id, id+1, typ); err != nil {
		return err
	}
	if err := g.SetNodeAttr(id, core.AttrDepth, depth); err != nil {
		return fmt.Errorf("%s: %w", MethodKAryTree, err)
	}

	return nil
}

// treeSize returns Σ_{d=0..h} k^d and false if the sum overflows int.
func treeSize(k, h int) (int, bool) {
	total, width := 1, 1
	for d := 1; d <= h; d++ {
		if width > math.MaxInt/k {
			return 0, false
		}
		width *= k
		if total > math.MaxInt-width {
			return 0, false
		}
		total += width
	}

	return total, true
}
