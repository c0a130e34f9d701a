// Package manifest loads declarative fixture manifests and generates the
// topologies they name.
//
// A manifest lists fixtures, each with a unique name, a topology kind and the
// positional arguments of its generator. YAML:
//
//	fixtures:
//	  - name: small-ring
//	    topology: ring
//	    args: [10]
//
// HCL:
//
//	fixture "small-ring" {
//	  topology = "ring"
//	  args     = [10]
//	}
//
// Topology names are resolved by builder.ParseKind, so "ring" and
// "ring_topology" are equivalent. Arguments are passed to builder.Generate
// with their decoded types: a quoted "10" is a string and fails with
// builder.ErrTypeMismatch, 2.5 is a float and fails the same way.
//
// Typical use:
//
//	m, err := manifest.LoadFile("fixtures.yaml")
//	if err != nil { ... }
//	fixtures, err := manifest.Build(m)
package manifest
