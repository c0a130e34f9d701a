// SPDX-License-Identifier: MIT
// Package: lvtopo/check
//
// verify.go - structural verification of generated topologies.
//
// Contract:
//   • Expectations are derived from g.Kind() and g.Params() only.
//   • Unknown kinds and missing params stop verification immediately.
//   • Per-kind adjacency and role checks run only when the node count matches
//     and every parameter lies in [1, V], so their cost is bounded by the graph
//     itself and never by its (possibly decoded) parameters.
//   • All other violations accumulate; each sentinel appears at most once in
//     the joined error, with its first offending detail and an occurrence count.
//
// Complexity:
//   • Time: O(V + E log Δ) for BFS and DFS plus O(Σ deg) for adjacency checks.
//   • Space: O(V).

package check

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvtopo/bfs"
	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/core"
	"github.com/katalvlaran/lvtopo/dfs"
)

// treeKinds are the kinds whose output must be acyclic.
var treeKinds = map[builder.Kind]bool{
	builder.KindLine:     true,
	builder.KindStar:     true,
	builder.KindKAryTree: true,
	builder.KindDumbbell: true,
}

// Verify checks g against the shape its kind and parameters prescribe:
// counts, contiguous IDs, connectivity, acyclicity for tree-shaped kinds,
// exact adjacency, role labels, role degrees and tree depths.
//
// Returns nil when g is well-formed, otherwise an error matching one or more
// of the package sentinels under errors.Is.
func Verify(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	kind := builder.Kind(g.Kind())
	want, err := ExpectedCounts(kind, g.Params())
	if err != nil {
		return fmt.Errorf("Verify(%s): %w", g.Name(), err)
	}
	params, _ := paramValues(kind, g.Params())

	r := newReport()
	nodes, edges := g.NodeCount(), g.EdgeCount()
	if nodes != want.Nodes || edges != want.Edges {
		r.addf(ErrCountMismatch, "have %d nodes/%d edges, want %d/%d", nodes, edges, want.Nodes, want.Edges)
	}
	for i, id := range g.Nodes() {
		if id != i {
			r.addf(ErrCountMismatch, "node IDs are not 0..%d (found %d at position %d)", nodes-1, id, i)
			break
		}
	}

	connected, err := bfs.Connected(g)
	if err != nil {
		return fmt.Errorf("Verify(%s): %w", g.Name(), err)
	}
	if !connected {
		r.addf(ErrNotConnected, "not every node is reachable from node 0")
	}
	if treeKinds[kind] {
		if nodes > 0 && edges != nodes-1 {
			r.addf(ErrNotTree, "%d edges for %d nodes", edges, nodes)
		}
		cycle, err := dfs.FindCycle(g)
		if err != nil {
			return fmt.Errorf("Verify(%s): %w", g.Name(), err)
		}
		if cycle != nil {
			r.addf(ErrNotTree, "cycle %v", cycle)
		}
	}

	if nodes != want.Nodes {
		return finish(g, r)
	}
	for i, name := range builder.ParamNames(kind) {
		if params[i] < 1 || params[i] > nodes {
			r.addf(ErrCountMismatch, "parameter %s=%d outside [1, %d]", name, params[i], nodes)
			return finish(g, r)
		}
	}

	switch kind {
	case builder.KindLine:
		verifyLine(g, r, params[0])
	case builder.KindRing:
		verifyRing(g, r, params[0])
	case builder.KindStar:
		verifyStar(g, r, params[0])
	case builder.KindFullMesh:
		verifyFullMesh(g, r, params[0])
	case builder.KindKAryTree:
		if r.count[ErrNotTree] == 0 {
			verifyKAryTree(g, r, params[0], params[1])
		}
	case builder.KindDumbbell:
		verifyDumbbell(g, r, params[0], params[1])
	}

	return finish(g, r)
}

// finish wraps the joined violations of r with the graph name, or returns nil.
func finish(g *core.Graph, r *report) error {
	if err := r.err(); err != nil {
		return fmt.Errorf("Verify(%s): %w", g.Name(), err)
	}

	return nil
}

func verifyLine(g *core.Graph, r *report, n int) {
	for i := 0; i < n; i++ {
		var want []int
		if i > 0 {
			want = append(want, i-1)
		}
		if i < n-1 {
			want = append(want, i+1)
		}
		expectNeighbors(g, r, i, want)
	}
}

func verifyRing(g *core.Graph, r *report, n int) {
	for i := 0; i < n; i++ {
		set := map[int]struct{}{(i + n - 1) % n: {}, (i + 1) % n: {}}
		delete(set, i)
		want := make([]int, 0, len(set))
		for v := range set {
			want = append(want, v)
		}
		sort.Ints(want)
		expectNeighbors(g, r, i, want)
	}
}

func verifyStar(g *core.Graph, r *report, n int) {
	expectType(g, r, builder.RootNodeID, core.TypeRoot)
	expectNeighbors(g, r, builder.RootNodeID, intRange(1, n+1))
	for i := 1; i <= n; i++ {
		expectType(g, r, i, core.TypeLeaf)
		expectNeighbors(g, r, i, []int{builder.RootNodeID})
	}
}

// verifyFullMesh compares degrees first so that a sparse graph is rejected in
// O(V) without materializing n-1 neighbors per node.
func verifyFullMesh(g *core.Graph, r *report, n int) {
	for i := 0; i < n; i++ {
		deg, err := g.Degree(i)
		if err != nil {
			r.addf(ErrAdjacencyMismatch, "node %d: %v", i, err)
			continue
		}
		if deg != n-1 {
			r.addf(ErrAdjacencyMismatch, "node %d has degree %d, want %d", i, deg, n-1)
			continue
		}
		want := make([]int, 0, n-1)
		want = append(want, intRange(0, i)...)
		want = append(want, intRange(i+1, n)...)
		expectNeighbors(g, r, i, want)
	}
}

// verifyKAryTree checks roles, role degrees and depth labels during a DFS
// from the root. Once acyclicity holds, DFS depth is the root distance.
func verifyKAryTree(g *core.Graph, r *report, k, h int) {
	if !g.HasNode(builder.RootNodeID) {
		r.addf(ErrRoleMismatch, "root %d is missing", builder.RootNodeID)
		return
	}

	var (
		wantType   string
		wantDegree int
	)
	visit := func(v, dist int) error {
		switch {
		case dist == 0:
			wantType, wantDegree = core.TypeRoot, k
		case dist == h:
			wantType, wantDegree = core.TypeLeaf, 1
		default:
			wantType, wantDegree = core.TypeIntermediate, k+1
		}
		if dist > h {
			r.addf(ErrDepthMismatch, "node %d at distance %d exceeds height %d", v, dist, h)
		}
		expectType(g, r, v, wantType)
		if deg, _ := g.Degree(v); deg != wantDegree {
			r.addf(ErrRoleMismatch, "%s node %d has degree %d, want %d", wantType, v, deg, wantDegree)
		}
		if d, ok := g.NodeDepth(v); !ok || d != dist {
			r.addf(ErrDepthMismatch, "node %d depth label %d (present=%v), root distance %d", v, d, ok, dist)
		}

		return nil
	}
	if _, err := dfs.DFS(g, builder.RootNodeID, dfs.WithOnVisit(visit)); err != nil {
		r.addf(ErrDepthMismatch, "DFS from root: %v", err)
	}
}

func verifyDumbbell(g *core.Graph, r *report, m, n int) {
	first, last := m, m+n-1
	for i := 0; i < m; i++ {
		expectType(g, r, i, core.TypeLeftBell)
		expectNeighbors(g, r, i, []int{first})
	}
	for i := first; i <= last; i++ {
		expectType(g, r, i, core.TypeCore)
		var want []int
		if i == first {
			want = append(want, intRange(0, m)...)
		}
		if i > first {
			want = append(want, i-1)
		}
		if i < last {
			want = append(want, i+1)
		}
		if i == last {
			want = append(want, intRange(m+n, 2*m+n)...)
		}
		expectNeighbors(g, r, i, want)
	}
	for i := m + n; i < 2*m+n; i++ {
		expectType(g, r, i, core.TypeRightBell)
		expectNeighbors(g, r, i, []int{last})
	}
}

// expectType records ErrRoleMismatch unless id is labeled typ.
func expectType(g *core.Graph, r *report, id int, typ string) {
	if got := g.NodeType(id); got != typ {
		r.addf(ErrRoleMismatch, "node %d has type %q, want %q", id, got, typ)
	}
}

// expectNeighbors records ErrAdjacencyMismatch unless the sorted neighbors
// of id equal want (which must be sorted).
func expectNeighbors(g *core.Graph, r *report, id int, want []int) {
	got, err := g.Neighbors(id)
	if err != nil {
		r.addf(ErrAdjacencyMismatch, "node %d: %v", id, err)
		return
	}
	if len(got) != len(want) {
		r.addf(ErrAdjacencyMismatch, "node %d has neighbors %v, want %v", id, got, want)
		return
	}
	for i := range got {
		if got[i] != want[i] {
			r.addf(ErrAdjacencyMismatch, "node %d has neighbors %v, want %v", id, got, want)
			return
		}
	}
}

// intRange returns [from, to) as a slice.
func intRange(from, to int) []int {
	if to <= from {
		return nil
	}
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}

	return out
}

// report accumulates violations, keeping the first detail per sentinel.
type report struct {
	order []error
	first map[error]string
	count map[error]int
}

func newReport() *report {
	return &report{first: make(map[error]string), count: make(map[error]int)}
}

func (r *report) addf(sentinel error, format string, args ...interface{}) {
	if r.count[sentinel] == 0 {
		r.order = append(r.order, sentinel)
		r.first[sentinel] = fmt.Sprintf(format, args...)
	}
	r.count[sentinel]++
}

// err joins one error per violated sentinel in first-seen order, or nil.
func (r *report) err() error {
	if len(r.order) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.order))
	for _, s := range r.order {
		if c := r.count[s]; c > 1 {
			errs = append(errs, fmt.Errorf("%s (and %d more): %w", r.first[s], c-1, s))
			continue
		}
		errs = append(errs, fmt.Errorf("%s: %w", r.first[s], s))
	}

	return errors.Join(errs...)
}
