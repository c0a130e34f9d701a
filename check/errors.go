// SPDX-License-Identifier: MIT
// Package check: sentinel error set.
// Verify reports every violated property at once through errors.Join, so
// callers test each sentinel with errors.Is on the joined error.

package check

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// graph nil -> unknown kind -> missing param -> counts -> connectivity / tree
// -> adjacency -> roles -> depths.
// The first three stop verification immediately; the rest accumulate.

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("check: graph is nil")

	// ErrUnknownKind indicates that the graph's Kind is not a builder kind.
	ErrUnknownKind = errors.New("check: unknown topology kind")

	// ErrMissingParam indicates that a parameter the kind requires is absent
	// from the graph's Params, so expectations cannot be derived.
	ErrMissingParam = errors.New("check: missing topology parameter")

	// ErrCountMismatch indicates that node or edge counts differ from the
	// closed-form counts for the kind and parameters.
	ErrCountMismatch = errors.New("check: node/edge count mismatch")

	// ErrNotConnected indicates that some node is unreachable from node 0.
	ErrNotConnected = errors.New("check: graph is not connected")

	// ErrNotTree indicates a tree-shaped kind whose edge count is not V-1.
	ErrNotTree = errors.New("check: graph is not a tree")

	// ErrAdjacencyMismatch indicates a node whose neighbor set differs from
	// the one the kind prescribes.
	ErrAdjacencyMismatch = errors.New("check: adjacency mismatch")

	// ErrRoleMismatch indicates a missing or wrong "type" label, or a role
	// whose degree is wrong (root k, intermediate k+1, leaf 1).
	ErrRoleMismatch = errors.New("check: node role mismatch")

	// ErrDepthMismatch indicates a "depth" label that differs from the BFS
	// distance to the root.
	ErrDepthMismatch = errors.New("check: node depth mismatch")
)
