// Package encoding serializes topologies as node-link documents in JSON or
// YAML and reads them back.
//
// Document shape (YAML):
//
//	name: k_ary_tree_topology(2, 1)
//	kind: k_ary_tree
//	params:
//	  - name: k
//	    value: 2
//	  - name: h
//	    value: 1
//	nodes:
//	  - id: 0
//	    type: root
//	    depth: 0
//	  - ...
//	links:
//	  - source: 0
//	    target: 1
//	  - ...
//
// A round trip preserves the graph name, kind, parameters, node roles,
// depths and edge order, so a decoded fixture still passes check.Verify.
package encoding
