// Package core provides the thread-safe, in-memory undirected graph that every
// lvtopo generator returns.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Nodes are non-negative integers; generators number them sequentially.
//   - Edges are unordered pairs of distinct nodes: no self-loops, no multi-edges.
//   - Each node carries a Metadata map; the role label lives under AttrType and
//     the tree depth under AttrDepth.
//   - The graph itself carries a Name ("ring_topology(10)"), a Kind ("ring")
//     and ordered integer Params (n=10).
//   - Separate sync.RWMutex for nodes (muNode) and edges+adjacency (muEdgeAdj).
//
// Why a dedicated graph type?
//
//   - Deterministic iteration: Nodes() and Neighbors() are sorted, Edges() keeps
//     insertion order, so golden files stay stable.
//   - Constant-time HasEdge via mirrored adjacency sets.
//   - Clone for fixtures that tests want to mutate.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id int) error                     // O(1)
//	HasNode(id int) bool                      // O(1)
//	SetNodeAttr(id, key, value) error         // O(1)
//	NodeType(id) string / NodeDepth(id)       // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error                   // O(1), auto-adds endpoints
//	HasEdge(u, v int) bool                    // O(1)
//
//	// Query
//	Neighbors(id int) ([]int, error)          // O(d·log d)
//	Degree(id int) (int, error)               // O(1)
//	Nodes() []int                             // O(V·log V)
//	Edges() []Edge                            // O(E)
//	NodesOfType(typ string) []int             // O(V·log V)
//	Stats() *GraphStats                       // O(V)
//
// Errors:
//
//	ErrNegativeNodeID      – id < 0
//	ErrNodeNotFound        – missing node
//	ErrLoopNotAllowed      – u == v
//	ErrMultiEdgeNotAllowed – pair already connected
package core
