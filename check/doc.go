// Package check verifies that a core.Graph has exactly the shape its
// topology kind and parameters prescribe.
//
// ExpectedCounts gives the closed-form node and edge counts. Verify goes
// further: contiguous IDs, connectivity, acyclicity for tree-shaped kinds,
// exact neighbor sets, role labels and role degrees, and for k-ary trees the
// agreement of every "depth" label with the BFS distance from the root.
//
// Verify returns an errors.Join of package sentinels, so a caller can ask
// about each property separately:
//
//	if err := check.Verify(g); errors.Is(err, check.ErrDepthMismatch) { ... }
package check
