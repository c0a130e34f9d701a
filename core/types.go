// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph, Node, Edge and Param types, GraphOption constructors, sentinels.
//
// All core APIs use separate sync.RWMutex locks internally (muNode for nodes
// and graph attributes, muEdgeAdj for edges and adjacency), acquired in that
// order.
//
// Errors:
//
//	ErrNegativeNodeID      - node ID is below zero.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrLoopNotAllowed      - edge endpoints are the same node.
//	ErrMultiEdgeNotAllowed - the unordered pair is already connected.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeID indicates that a node ID below zero was supplied.
	ErrNegativeNodeID = errors.New("core: node ID is negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Well-known node metadata keys.
const (
	// AttrType is the metadata key holding a node's role label.
	AttrType = "type"

	// AttrDepth is the metadata key holding a tree node's distance from the root.
	AttrDepth = "depth"
)

// Node roles assigned by the topology generators.
const (
	TypeRoot         = "root"
	TypeIntermediate = "intermediate"
	TypeLeaf         = "leaf"
	TypeCore         = "core"
	TypeLeftBell     = "left_bell"
	TypeRightBell    = "right_bell"
)

// Node represents a network node in the graph.
//
// ID uniquely identifies this Node within its Graph.
// Metadata stores per-node attributes such as AttrType and AttrDepth.
type Node struct {
	// ID is the unique identifier for this Node.
	ID int

	// Metadata stores attributes. It is deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge is an unordered pair of distinct node IDs, normalized so that From < To.
type Edge struct {
	From int
	To   int
}

// Param is a named integer parameter used to generate a graph (e.g. n=10).
type Param struct {
	Name  string
	Value int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithName sets the human-readable graph name, e.g. "ring_topology(10)".
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// WithKind sets the topology kind label, e.g. "ring".
func WithKind(kind string) GraphOption {
	return func(g *Graph) { g.kind = kind }
}

// WithParam records a generation parameter. Order of application is preserved.
func WithParam(name string, value int) GraphOption {
	return func(g *Graph) { g.setParamLocked(name, value) }
}

// WithCapacity pre-sizes internal maps for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make(map[int]*Node, n)
			g.adjacency = make(map[int]map[int]struct{}, n)
		}
	}
}

// Graph is an undirected simple graph: no self-loops, no parallel edges.
//
// muNode protects nodes and graph attributes; muEdgeAdj protects edges and adjacency.
// Edges are kept in insertion order so generator output is reproducible.
type Graph struct {
	muNode    sync.RWMutex // guards nodes, name, kind, params
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Graph attributes
	name   string
	kind   string
	params []Param

	// Storage
	nodes     map[int]*Node
	edges     []Edge
	adjacency map[int]map[int]struct{}
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1) plus option cost.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[int]*Node),
		adjacency: make(map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// setParamLocked inserts or overwrites a parameter. Caller holds muNode or owns g exclusively.
func (g *Graph) setParamLocked(name string, value int) {
	for i := range g.params {
		if g.params[i].Name == name {
			g.params[i].Value = value
			return
		}
	}
	g.params = append(g.params, Param{Name: name, Value: value})
}
