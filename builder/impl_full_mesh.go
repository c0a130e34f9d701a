// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_full_mesh.go - implementation of FullMeshTopology(n).
//
// Contract:
//   • n ≥ 1 (else ErrInvalidArgument).
//   • Adds nodes 0..n-1 in ascending order, unlabeled.
//   • Emits each unordered pair {i,j} with i<j exactly once,
//     in lexicographic (i,j) order.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/core"
)

// FullMeshTopology returns the complete graph K_n.
// Node count = n, edge count = n(n-1)/2.
func FullMeshTopology(n int) (*core.Graph, error) {
	if err := validateMin(MethodFullMesh, "n", n, MinFullMeshNodes); err != nil {
		return nil, err
	}

	return build(KindFullMesh, []core.Param{{Name: "n", Value: n}}, n, func(g *core.Graph) error {
		if err := addNodes(g, MethodFullMesh, 0, n, ""); err != nil {
			return err
		}

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: %w", MethodFullMesh, err)
				}
			}
		}

		return nil
	})
}
