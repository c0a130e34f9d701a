// Package builder generates small deterministic network topologies used as
// test fixtures: line, ring, star, full mesh, complete k-ary tree and dumbbell.
//
// Every generator is a pure function over integer parameters. It validates
// all parameters first and then returns a freshly built *core.Graph, or a
// sentinel error and no graph at all.
//
// Generators:
//
//   - LineTopology(n):        path 0-1-...-(n-1).
//   - RingTopology(n):        cycle on n nodes (n=1 single node, n=2 one edge).
//   - StarTopology(n):        root 0 and leaves 1..n.
//   - FullMeshTopology(n):    complete graph K_n.
//   - KAryTreeTopology(k, h): complete k-ary tree of height h, BFS numbering.
//   - DumbbellTopology(m, n): two bells of m nodes around a core path of n nodes.
//
// Node roles are stored under core.AttrType and tree depths under
// core.AttrDepth. Each graph also carries its name ("ring_topology(10)"),
// its Kind and its named integer parameters.
//
// Dynamic entry point:
//
//	g, err := builder.Generate(builder.KindKAryTree, 2, 3)
//
// Generate accepts any Go integer type. Other values (strings, floats, bools)
// fail with ErrTypeMismatch. Out-of-domain values, a wrong argument count and
// unknown kinds fail with ErrInvalidArgument.
//
// Complexity is documented per generator; all are linear in the size of the
// produced graph.
package builder
