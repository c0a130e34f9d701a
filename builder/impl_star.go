// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_star.go - implementation of StarTopology(n).
//
// Contract:
//   - n ≥ 1 leaves (else ErrInvalidArgument).
//   - n+1 must fit in int (else ErrInvalidArgument).
//   - Adds the hub with fixed ID RootNodeID (0), labeled "root".
//   - Adds leaves 1..n, labeled "leaf", in ascending order.
//   - Emits spokes (0, i) in stable increasing leaf order.
//
// Complexity:
//   - Time: O(n+1) nodes + O(n) edges.
//   - Space: O(1) extra.

package builder

import (
	"math"

	"github.com/katalvlaran/lvtopo/core"
)

// StarTopology returns a star with one root and n leaves.
// Node count = n+1, edge count = n.
func StarTopology(n int) (*core.Graph, error) {
	if err := validateMin(MethodStar, "n", n, MinStarLeaves); err != nil {
		return nil, err
	}
	if n > math.MaxInt-1 {
		return nil, builderErrorf(MethodStar, ErrInvalidArgument, "n=%d: node count overflows int", n)
	}

	return build(KindStar, []core.Param{{Name: "n", Value: n}}, n+1, func(g *core.Graph) error {
		if err := addNodes(g, MethodStar, RootNodeID, RootNodeID+1, core.TypeRoot); err != nil {
			return err
		}
		if err := addNodes(g, MethodStar, 1, n+1, core.TypeLeaf); err != nil {
			return err
		}

		return addSpokes(g, MethodStar, RootNodeID, 1, n+1)
	})
}
