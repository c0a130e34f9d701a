// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Graph attribute accessors and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of graph attributes and catalog sizes.
type GraphStats struct {
	Name      string
	Kind      string
	NodeCount int
	EdgeCount int
	MinDegree int
	MaxDegree int
	// TypeCounts maps role label to number of nodes carrying it. Unlabeled nodes are not counted.
	TypeCounts map[string]int
}

// Name returns the graph name. O(1), muNode read lock.
func (g *Graph) Name() string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.name
}

// SetName replaces the graph name. O(1), muNode write lock.
func (g *Graph) SetName(name string) {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.name = name
}

// Kind returns the topology kind label. O(1), muNode read lock.
func (g *Graph) Kind() string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.kind
}

// SetKind replaces the topology kind label. O(1), muNode write lock.
func (g *Graph) SetKind(kind string) {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.kind = kind
}

// SetParam records or overwrites a generation parameter.
// Complexity: O(P), muNode write lock.
func (g *Graph) SetParam(name string, value int) {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.setParamLocked(name, value)
}

// Param returns the named parameter and whether it is present.
// Complexity: O(P), muNode read lock.
func (g *Graph) Param(name string) (int, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	for _, p := range g.params {
		if p.Name == name {
			return p.Value, true
		}
	}

	return 0, false
}

// Params returns a copy of all parameters in the order they were recorded.
// Complexity: O(P), muNode read lock.
func (g *Graph) Params() []Param {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return append([]Param(nil), g.params...)
}

// Stats produces a deterministic snapshot of attributes, counts, degree
// bounds and role histogram.
//
// Implementation:
//   - Acquire muNode then muEdgeAdj read locks (same order as mutators).
//   - Single pass over nodes.
//
// Complexity: O(V), Space O(#roles).
func (g *Graph) Stats() *GraphStats {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats := &GraphStats{
		Name:       g.name,
		Kind:       g.kind,
		NodeCount:  len(g.nodes),
		EdgeCount:  len(g.edges),
		TypeCounts: make(map[string]int),
	}
	first := true
	for id, n := range g.nodes {
		d := len(g.adjacency[id])
		if first || d < stats.MinDegree {
			stats.MinDegree = d
		}
		if first || d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		first = false
		if s, ok := n.Metadata[AttrType].(string); ok && s != "" {
			stats.TypeCounts[s]++
		}
	}

	return stats
}
