// File: methods_nodes.go
// Role: Node lifecycle, attributes & queries.
//
// Determinism:
//   - Nodes() returns IDs sorted ascending.
//
// Concurrency:
//   - Node catalog and metadata protected by muNode.
//   - Adjacency bootstrap under muEdgeAdj.
package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node if missing (idempotent).
//
// Metadata is initialized to a non-nil map. Lock order is muNode -> muEdgeAdj.
//
// Errors:
//   - ErrNegativeNodeID: if id < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int) error {
	if id < 0 {
		return ErrNegativeNodeID
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil // no-op for existing node
	}
	g.nodes[id] = &Node{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasNode reports whether the node ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// SetNodeAttr stores value under key in the node's metadata.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
func (g *Graph) SetNodeAttr(id int, key string, value interface{}) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("SetNodeAttr(%d, %q): %w", id, key, ErrNodeNotFound)
	}
	n.Metadata[key] = value

	return nil
}

// NodeAttr returns the metadata value stored under key, and whether it was present.
func (g *Graph) NodeAttr(id int, key string) (interface{}, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	v, ok := n.Metadata[key]

	return v, ok
}

// NodeType returns the node's role label, or "" when unset or the node is missing.
func (g *Graph) NodeType(id int) string {
	v, ok := g.NodeAttr(id, AttrType)
	if !ok {
		return ""
	}
	s, _ := v.(string)

	return s
}

// NodeDepth returns the node's tree depth and whether one is recorded.
func (g *Graph) NodeDepth(id int) (int, bool) {
	v, ok := g.NodeAttr(id, AttrDepth)
	if !ok {
		return 0, false
	}
	d, ok := v.(int)

	return d, ok
}

// NodesOfType returns, in ascending order, the IDs of nodes labeled with typ.
// Complexity: O(V log V).
func (g *Graph) NodesOfType(typ string) []int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	var ids []int
	for id, n := range g.nodes {
		if s, _ := n.Metadata[AttrType].(string); s == typ {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	return ids
}

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
