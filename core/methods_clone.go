// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: attributes, nodes (metadata maps
// copied one level deep), edges in the same order, and adjacency.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithName(g.name), WithKind(g.kind), WithCapacity(len(g.nodes)))
	clone.params = append([]Param(nil), g.params...)

	for id, n := range g.nodes {
		md := make(map[string]interface{}, len(n.Metadata))
		for k, v := range n.Metadata {
			md[k] = v
		}
		clone.nodes[id] = &Node{ID: id, Metadata: md}
		adj := make(map[int]struct{}, len(g.adjacency[id]))
		for nbr := range g.adjacency[id] {
			adj[nbr] = struct{}{}
		}
		clone.adjacency[id] = adj
	}
	clone.edges = append(make([]Edge, 0, len(g.edges)), g.edges...)

	return clone
}
