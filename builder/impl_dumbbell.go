// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_dumbbell.go - implementation of DumbbellTopology(m, n).
//
// Contract:
//   • m ≥ 2 bell nodes and n ≥ 1 core nodes (else ErrInvalidArgument).
//   • 2m+n must fit in int (else ErrInvalidArgument).
//   • IDs: [0, m) left bell, [m, m+n) core path, [m+n, 2m+n) right bell,
//     labeled "left_bell", "core" and "right_bell".
//   • Emits, in order: left spokes (i, m), core path (i, i+1) for
//     i in [m, m+n-2], right spokes (m+n-1, i).
//   • The result is a tree: 2m+n nodes, 2m+n-1 edges.
//
// Complexity:
//   • Time: O(m+n) nodes and edges.
//   • Space: O(1) extra.

package builder

import (
	"math"

	"github.com/katalvlaran/lvtopo/core"
)

// DumbbellTopology returns two bells of m nodes joined by a core path of n nodes.
func DumbbellTopology(m, n int) (*core.Graph, error) {
	if err := validateMin(MethodDumbbell, "m", m, MinBellNodes); err != nil {
		return nil, err
	}
	if err := validateMin(MethodDumbbell, "n", n, MinCoreNodes); err != nil {
		return nil, err
	}
	if m > (math.MaxInt-n)/2 {
		return nil, builderErrorf(MethodDumbbell, ErrInvalidArgument, "m=%d n=%d: node count overflows int", m, n)
	}

	var (
		coreFirst  = m         // first core node, left bells attach here
		coreLast   = m + n - 1 // last core node, right bells attach here
		rightFirst = m + n
		total      = 2*m + n
	)
	params := []core.Param{{Name: "m", Value: m}, {Name: "n", Value: n}}

	return build(KindDumbbell, params, total, func(g *core.Graph) error {
		if err := addNodes(g, MethodDumbbell, 0, coreFirst, core.TypeLeftBell); err != nil {
			return err
		}
		if err := addNodes(g, MethodDumbbell, coreFirst, rightFirst, core.TypeCore); err != nil {
			return err
		}
		if err := addNodes(g, MethodDumbbell, rightFirst, total, core.TypeRightBell); err != nil {
			return err
		}

		if err := addSpokes(g, MethodDumbbell, coreFirst, 0, coreFirst); err != nil {
			return err
		}
		if err := addPath(g, MethodDumbbell, coreFirst, rightFirst); err != nil {
			return err
		}

		return addSpokes(g, MethodDumbbell, coreLast, rightFirst, total)
	})
}
