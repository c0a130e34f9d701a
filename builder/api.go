// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// api.go - topology kinds and the dynamic Generate entry point.
//
// Design contract (strict):
//   - Typed factories (LineTopology, RingTopology, ...) live in impl_*.go.
//   - Generate dispatches by Kind with dynamically typed arguments; it is the
//     only place where ErrTypeMismatch can originate.
//   - Check order in Generate: unknown kind, arity, argument types (left to
//     right), then the generator's own range checks.
//   - The registry is immutable after package init; all lookups are read-only.

package builder

import (
	"strings"

	"github.com/katalvlaran/lvtopo/core"
)

// Kind names a topology family. Its string form is stored on generated graphs
// (see core.Graph.Kind) and used by manifests and the CLI.
type Kind string

// Supported topology kinds.
const (
	KindLine     Kind = "line"
	KindRing     Kind = "ring"
	KindStar     Kind = "star"
	KindFullMesh Kind = "full_mesh"
	KindKAryTree Kind = "k_ary_tree"
	KindDumbbell Kind = "dumbbell"
)

// kindSuffix is appended to a kind to form the generator's canonical name.
const kindSuffix = "_topology"

// entry binds a kind to its parameter names and typed generator.
type entry struct {
	params []string
	gen    func(args []int) (*core.Graph, error)
}

// registry maps every supported kind to its generator.
var registry = map[Kind]entry{
	KindLine: {params: []string{"n"}, gen: func(a []int) (*core.Graph, error) {
		return LineTopology(a[0])
	}},
	KindRing: {params: []string{"n"}, gen: func(a []int) (*core.Graph, error) {
		return RingTopology(a[0])
	}},
	KindStar: {params: []string{"n"}, gen: func(a []int) (*core.Graph, error) {
		return StarTopology(a[0])
	}},
	KindFullMesh: {params: []string{"n"}, gen: func(a []int) (*core.Graph, error) {
		return FullMeshTopology(a[0])
	}},
	KindKAryTree: {params: []string{"k", "h"}, gen: func(a []int) (*core.Graph, error) {
		return KAryTreeTopology(a[0], a[1])
	}},
	KindDumbbell: {params: []string{"m", "n"}, gen: func(a []int) (*core.Graph, error) {
		return DumbbellTopology(a[0], a[1])
	}},
}

// kindOrder fixes the listing order of Kinds.
var kindOrder = []Kind{KindLine, KindRing, KindStar, KindFullMesh, KindKAryTree, KindDumbbell}

// Kinds returns every supported kind in a stable order.
// The returned slice is a fresh copy.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)

	return out
}

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	_, ok := registry[k]
	return ok
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// ParseKind resolves s to a Kind. It is case-insensitive, trims spaces, and
// also accepts the generator's canonical name (e.g. "ring_topology").
// Unknown names yield ErrInvalidArgument.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(name, kindSuffix)
	k := Kind(name)
	if !k.Valid() {
		return "", builderErrorf(MethodGenerate, ErrInvalidArgument, "unknown topology %q", s)
	}

	return k, nil
}

// Arity returns the number of integer parameters kind expects,
// or 0 for an unknown kind.
func Arity(kind Kind) int {
	return len(registry[kind].params)
}

// ParamNames returns the parameter names of kind in positional order
// (e.g. ["k", "h"] for KindKAryTree), or nil for an unknown kind.
func ParamNames(kind Kind) []string {
	e, ok := registry[kind]
	if !ok {
		return nil
	}
	out := make([]string, len(e.params))
	copy(out, e.params)

	return out
}

// Generate builds the topology named by kind from dynamically typed args.
//
// Errors:
//   - ErrInvalidArgument: unknown kind, wrong number of args, int overflow,
//     or a value outside the generator's domain.
//   - ErrTypeMismatch: an argument is not a Go integer (string, bool,
//     float, nil, ...).
//
// Complexity: O(len(args)) dispatch plus the generator's cost.
func Generate(kind Kind, args ...interface{}) (*core.Graph, error) {
	e, ok := registry[kind]
	if !ok {
		return nil, builderErrorf(MethodGenerate, ErrInvalidArgument, "unknown topology %q", string(kind))
	}
	if len(args) != len(e.params) {
		return nil, builderErrorf(MethodGenerate, ErrInvalidArgument,
			"%s expects %d argument(s) %v, got %d", kind, len(e.params), e.params, len(args))
	}

	ints := make([]int, len(args))
	for i, a := range args {
		v, err := toInt(MethodGenerate, e.params[i], a)
		if err != nil {
			return nil, err
		}
		ints[i] = v
	}

	return e.gen(ints)
}
