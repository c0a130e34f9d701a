// SPDX-License-Identifier: MIT
// Package: lvtopo/check
//
// counts.go - closed-form node and edge counts per topology kind.
//
// The formulas are written independently of the generators so that Verify
// compares two derivations rather than one derivation with itself.

package check

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/core"
)

// Counts holds the expected size of a topology.
type Counts struct {
	Nodes int
	Edges int
}

// ExpectedCounts returns the node and edge counts of kind for params.
//
//	line       n, n-1
//	ring       n, n (n ≥ 3), 1 (n = 2), 0 (n = 1)
//	star       n+1, n
//	full_mesh  n, n(n-1)/2
//	k_ary_tree Σ_{d=0..h} k^d, Σ_{d=1..h} k^d
//	dumbbell   2m+n, 2m+n-1
//
// Errors: ErrUnknownKind, ErrMissingParam, ErrCountMismatch when a count
// overflows int.
func ExpectedCounts(kind builder.Kind, params []core.Param) (Counts, error) {
	v, err := paramValues(kind, params)
	if err != nil {
		return Counts{}, err
	}

	switch kind {
	case builder.KindLine:
		n := v[0]
		return Counts{Nodes: n, Edges: n - 1}, nil
	case builder.KindRing:
		n := v[0]
		if n >= 3 {
			return Counts{Nodes: n, Edges: n}, nil
		}
		return Counts{Nodes: n, Edges: n - 1}, nil
	case builder.KindStar:
		n := v[0]
		if n == math.MaxInt {
			return Counts{}, errOverflow(kind, v)
		}
		return Counts{Nodes: n + 1, Edges: n}, nil
	case builder.KindFullMesh:
		n := v[0]
		if n > 1 && n-1 > math.MaxInt/n {
			return Counts{}, errOverflow(kind, v)
		}
		return Counts{Nodes: n, Edges: n * (n - 1) / 2}, nil
	case builder.KindKAryTree:
		k, h := v[0], v[1]
		edges, width := 0, 1
		for d := 1; d <= h; d++ {
			if k != 0 && width > math.MaxInt/k {
				return Counts{}, fmt.Errorf("ExpectedCounts: k=%d h=%d overflows int: %w", k, h, ErrCountMismatch)
			}
			width *= k
			edges += width
		}
		return Counts{Nodes: edges + 1, Edges: edges}, nil
	case builder.KindDumbbell:
		m, n := v[0], v[1]
		if m > 0 && n >= 0 && m > (math.MaxInt-n)/2 {
			return Counts{}, errOverflow(kind, v)
		}
		return Counts{Nodes: 2*m + n, Edges: 2*m + n - 1}, nil
	}

	return Counts{}, fmt.Errorf("ExpectedCounts: %q: %w", string(kind), ErrUnknownKind)
}

func errOverflow(kind builder.Kind, v []int) error {
	return fmt.Errorf("ExpectedCounts: %s%v overflows int: %w", kind, v, ErrCountMismatch)
}

// paramValues returns the values of kind's parameters in positional order.
func paramValues(kind builder.Kind, params []core.Param) ([]int, error) {
	names := builder.ParamNames(kind)
	if names == nil {
		return nil, fmt.Errorf("%q: %w", string(kind), ErrUnknownKind)
	}

	byName := make(map[string]int, len(params))
	for _, p := range params {
		byName[p.Name] = p.Value
	}
	out := make([]int, len(names))
	for i, name := range names {
		val, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%s needs %q: %w", kind, name, ErrMissingParam)
		}
		out[i] = val
	}

	return out, nil
}
