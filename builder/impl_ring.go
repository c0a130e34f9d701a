// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_ring.go - implementation of RingTopology(n).
//
// Contract:
//   • n ≥ 1 (else ErrInvalidArgument).
//   • Adds nodes 0..n-1 in ascending order, unlabeled.
//   • Emits edges i -> (i+1)%n for i=0..n-1 in stable order.
//   • Degenerate sizes: n=1 is a single isolated node (the closing edge would
//     be a self-loop); n=2 is a single edge (the closing edge would duplicate it).
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/core"
)

// minClosedRingNodes is the smallest ring whose closing edge is new and not a loop.
const minClosedRingNodes = 3

// RingTopology returns the cycle graph on n nodes.
// Node count = n; edge count = n for n ≥ 3, 1 for n = 2, 0 for n = 1.
func RingTopology(n int) (*core.Graph, error) {
	if err := validateMin(MethodRing, "n", n, MinRingNodes); err != nil {
		return nil, err
	}

	return build(KindRing, []core.Param{{Name: "n", Value: n}}, n, func(g *core.Graph) error {
		if err := addNodes(g, MethodRing, 0, n, ""); err != nil {
			return err
		}
		// Open path 0-1-...-(n-1) first.
		if err := addPath(g, MethodRing, 0, n); err != nil {
			return err
		}
		if n < minClosedRingNodes {
			return nil
		}
		// Close the ring with (n-1, 0).
		if err := g.AddEdge(n-1, 0); err != nil {
			return fmt.Errorf("%s: %w", MethodRing, err)
		}

		return nil
	})
}
