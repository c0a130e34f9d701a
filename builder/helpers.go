// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// helpers.go - internal helpers used by the generators to assemble common
// node/edge patterns. Every helper wraps errors with the generator method name.

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtopo/core"
)

// constructor applies a deterministic graph mutation to a fresh graph.
// Constructors run only after all parameters have been validated.
type constructor func(g *core.Graph) error

// build creates a graph carrying kind, name and params, then runs ctor on it.
// Nothing is returned on failure, so callers never see a partial graph.
//
// Complexity: O(P) plus the cost of ctor.
func build(kind Kind, params []core.Param, nodes int, ctor constructor) (*core.Graph, error) {
	opts := make([]core.GraphOption, 0, len(params)+3)
	opts = append(opts,
		core.WithName(topologyName(kind, params)),
		core.WithKind(string(kind)),
		core.WithCapacity(nodes),
	)
	for _, p := range params {
		opts = append(opts, core.WithParam(p.Name, p.Value))
	}
	g := core.NewGraph(opts...)

	if err := ctor(g); err != nil {
		return nil, err
	}

	return g, nil
}

// topologyName renders "<kind>_topology(<p1>, <p2>)", e.g. "ring_topology(10)".
func topologyName(kind Kind, params []core.Param) string {
	var sb strings.Builder
	sb.WriteString(string(kind))
	sb.WriteString("_topology(")
	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(p.Value))
	}
	sb.WriteByte(')')

	return sb.String()
}

// addNodes inserts nodes [from, to) in ascending order and labels each with
// typ when typ is non-empty.
//
// Complexity: O(to-from) time, O(1) extra space.
func addNodes(g *core.Graph, method string, from, to int, typ string) error {
	var (
		i   int
		err error
	)
	for i = from; i < to; i++ {
		if err = g.AddNode(i); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, i, err)
		}
		if typ == "" {
			continue
		}
		if err = g.SetNodeAttr(i, core.AttrType, typ); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// addPath emits edges (i, i+1) for i in [from, to-1), in increasing order.
//
// Complexity: O(to-from) time, O(1) extra space.
func addPath(g *core.Graph, method string, from, to int) error {
	var i int
	for i = from; i+1 < to; i++ {
		if err := g.AddEdge(i, i+1); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// addSpokes joins every node in [from, to) to hub, in increasing order.
//
// Complexity: O(to-from) time, O(1) extra space.
func addSpokes(g *core.Graph, method string, hub, from, to int) error {
	var i int
	for i = from; i < to; i++ {
		if err := g.AddEdge(hub, i); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}
