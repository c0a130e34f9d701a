// SPDX-License-Identifier: MIT
// Package: lvtopo/encoding
//
// document.go - node-link document model and its conversion to/from core.Graph.
//
// Contract:
//   • FromGraph lists nodes ascending by ID and links in the graph's edge order.
//   • Params keep their order (e.g. k before h).
//   • ToGraph rejects duplicate node IDs and dangling links; loops, parallel
//     links and negative IDs surface as the matching core sentinel.

package encoding

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtopo/core"
)

// Sentinel errors for encoding and decoding.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("encoding: graph is nil")

	// ErrDuplicateNode indicates a node ID listed more than once.
	ErrDuplicateNode = errors.New("encoding: duplicate node")

	// ErrDanglingLink indicates a link whose endpoint is not a listed node.
	ErrDanglingLink = errors.New("encoding: link references unknown node")

	// ErrUnknownFormat indicates a format name or extension with no codec.
	ErrUnknownFormat = errors.New("encoding: unknown format")

	// ErrDecode indicates malformed JSON or YAML input.
	ErrDecode = errors.New("encoding: malformed document")
)

// Document is the node-link form of a topology.
type Document struct {
	Name   string  `json:"name" yaml:"name"`
	Kind   string  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Params []Param `json:"params,omitempty" yaml:"params,omitempty"`
	Nodes  []Node  `json:"nodes" yaml:"nodes"`
	Links  []Link  `json:"links" yaml:"links"`
}

// Param is a named generator argument.
type Param struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

// Node carries an ID and the optional role and depth labels.
type Node struct {
	ID    int    `json:"id" yaml:"id"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Depth *int   `json:"depth,omitempty" yaml:"depth,omitempty"`
}

// Link is an undirected edge with Source < Target.
type Link struct {
	Source int `json:"source" yaml:"source"`
	Target int `json:"target" yaml:"target"`
}

// FromGraph converts g into a Document.
// Complexity: O(V log V + E).
func FromGraph(g *core.Graph) (*Document, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ids := g.Nodes()
	doc := &Document{
		Name:  g.Name(),
		Kind:  g.Kind(),
		Nodes: make([]Node, 0, len(ids)),
	}
	for _, p := range g.Params() {
		doc.Params = append(doc.Params, Param{Name: p.Name, Value: p.Value})
	}
	for _, id := range ids {
		n := Node{ID: id, Type: g.NodeType(id)}
		if d, ok := g.NodeDepth(id); ok {
			depth := d
			n.Depth = &depth
		}
		doc.Nodes = append(doc.Nodes, n)
	}
	edges := g.Edges()
	doc.Links = make([]Link, 0, len(edges))
	for _, e := range edges {
		doc.Links = append(doc.Links, Link{Source: e.From, Target: e.To})
	}

	return doc, nil
}

// ToGraph rebuilds a core.Graph from d.
//
// Errors: ErrDuplicateNode, ErrDanglingLink, core.ErrNegativeNodeID,
// core.ErrLoopNotAllowed, core.ErrMultiEdgeNotAllowed.
// Complexity: O(V + E).
func (d *Document) ToGraph() (*core.Graph, error) {
	opts := []core.GraphOption{
		core.WithName(d.Name),
		core.WithKind(d.Kind),
		core.WithCapacity(len(d.Nodes)),
	}
	for _, p := range d.Params {
		opts = append(opts, core.WithParam(p.Name, p.Value))
	}
	g := core.NewGraph(opts...)

	for _, n := range d.Nodes {
		if g.HasNode(n.ID) {
			return nil, fmt.Errorf("ToGraph: node %d: %w", n.ID, ErrDuplicateNode)
		}
		if err := g.AddNode(n.ID); err != nil {
			return nil, fmt.Errorf("ToGraph: %w", err)
		}
		if n.Type != "" {
			if err := g.SetNodeAttr(n.ID, core.AttrType, n.Type); err != nil {
				return nil, fmt.Errorf("ToGraph: %w", err)
			}
		}
		if n.Depth != nil {
			if err := g.SetNodeAttr(n.ID, core.AttrDepth, *n.Depth); err != nil {
				return nil, fmt.Errorf("ToGraph: %w", err)
			}
		}
	}
	for _, l := range d.Links {
		if !g.HasNode(l.Source) || !g.HasNode(l.Target) {
			return nil, fmt.Errorf("ToGraph: link %d-%d: %w", l.Source, l.Target, ErrDanglingLink)
		}
		if err := g.AddEdge(l.Source, l.Target); err != nil {
			return nil, fmt.Errorf("ToGraph: %w", err)
		}
	}

	return g, nil
}
