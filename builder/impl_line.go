// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_line.go - implementation of LineTopology(n).
//
// Contract:
//   - n ≥ 1 (else ErrInvalidArgument).
//   - Adds nodes 0..n-1 in ascending order, unlabeled.
//   - Emits edges (i, i+1) for i = 0..n-2 in stable increasing order.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import "github.com/katalvlaran/lvtopo/core"

// LineTopology returns the path graph on n nodes: 0-1-2-...-(n-1).
// Node count = n, edge count = n-1.
func LineTopology(n int) (*core.Graph, error) {
	if err := validateMin(MethodLine, "n", n, MinLineNodes); err != nil {
		return nil, err
	}

	return build(KindLine, []core.Param{{Name: "n", Value: n}}, n, func(g *core.Graph) error {
		if err := addNodes(g, MethodLine, 0, n, ""); err != nil {
			return err
		}

		return addPath(g, MethodLine, 0, n)
	})
}
