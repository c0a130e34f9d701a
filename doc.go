// Package lvtopo generates deterministic synthetic network topologies for
// tests, simulations and benchmarks, and checks them.
//
// What is inside:
//
//	builder/   - line, ring, star, full mesh, k-ary tree and dumbbell generators,
//	             plus Generate for dynamically typed arguments
//	core/      - thread-safe undirected graph with node roles and depths
//	bfs/       - breadth-first traversal, distances, connectivity
//	dfs/       - depth-first traversal and linear-time cycle detection
//	check/     - verifies a graph against the shape its kind prescribes
//	manifest/  - YAML and HCL fixture manifests
//	encoding/  - node-link documents in JSON or YAML, optionally snappy-compressed
//	metrics/   - Prometheus instruments for generation runs
//	cmd/lvtopo - command-line front end
//
// Same inputs give the same graph: node IDs are 0..N-1, assigned in a fixed
// order, and edges are emitted in a fixed order.
//
// Quick example:
//
//	g, err := builder.RingTopology(4)
//	// 0───1
//	// │   │
//	// 3───2
//
//	go install github.com/katalvlaran/lvtopo/cmd/lvtopo@latest
//	lvtopo gen -verify k_ary_tree 2 3
package lvtopo
