// File: builder_impl_test.go
// Package builder_test contains functional tests for all topology generators
// in the builder package, verifying counts, adjacency, node roles and depths.
package builder_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/core"
)

// neighbors returns the sorted neighbors of id, failing the test on error.
func neighbors(t *testing.T, g *core.Graph, id int) []int {
	t.Helper()
	nbrs, err := g.Neighbors(id)
	require.NoError(t, err)

	return nbrs
}

// degree returns the degree of id, failing the test on error.
func degree(t *testing.T, g *core.Graph, id int) int {
	t.Helper()
	d, err := g.Degree(id)
	require.NoError(t, err)

	return d
}

// TestBuilders_Functional runs table-driven functional tests for each generator.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		build       func() (*core.Graph, error)
		wantName    string
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:     "Line(8)",
			build:    func() (*core.Graph, error) { return builder.LineTopology(8) },
			wantName: "line_topology(8)",
			wantV:    8, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{2, 4}, neighbors(t, g, 3))
				assert.Equal(t, []int{1}, neighbors(t, g, 0))
				assert.Equal(t, []int{6}, neighbors(t, g, 7))
			},
		},
		{
			name:     "Line(1)",
			build:    func() (*core.Graph, error) { return builder.LineTopology(1) },
			wantName: "line_topology(1)",
			wantV:    1, wantE: 0,
		},
		{
			name:     "Ring(10)",
			build:    func() (*core.Graph, error) { return builder.RingTopology(10) },
			wantName: "ring_topology(10)",
			wantV:    10, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 10; i++ {
					assert.True(t, g.HasEdge(i, (i+1)%10), "edge %d-%d", i, (i+1)%10)
					assert.Equal(t, 2, degree(t, g, i))
				}
				assert.Equal(t, []int{1, 9}, neighbors(t, g, 0))
			},
		},
		{
			name:     "Ring(1)",
			build:    func() (*core.Graph, error) { return builder.RingTopology(1) },
			wantName: "ring_topology(1)",
			wantV:    1, wantE: 0,
		},
		{
			name:     "Ring(2)",
			build:    func() (*core.Graph, error) { return builder.RingTopology(2) },
			wantName: "ring_topology(2)",
			wantV:    2, wantE: 1,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []core.Edge{{From: 0, To: 1}}, g.Edges())
			},
		},
		{
			name:     "Star(10)",
			build:    func() (*core.Graph, error) { return builder.StarTopology(10) },
			wantName: "star_topology(10)",
			wantV:    11, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, core.TypeRoot, g.NodeType(builder.RootNodeID))
				assert.Equal(t, 10, degree(t, g, builder.RootNodeID))
				for i := 1; i <= 10; i++ {
					assert.Equal(t, core.TypeLeaf, g.NodeType(i))
					assert.Equal(t, []int{0}, neighbors(t, g, i))
				}
			},
		},
		{
			name:     "FullMesh(10)",
			build:    func() (*core.Graph, error) { return builder.FullMeshTopology(10) },
			wantName: "full_mesh_topology(10)",
			wantV:    10, wantE: 45,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 10; i++ {
					for j := 0; j < 10; j++ {
						if i != j {
							assert.True(t, g.HasEdge(i, j), "edge %d-%d", i, j)
						}
					}
				}
			},
		},
		{
			name:     "KAryTree(2,1)",
			build:    func() (*core.Graph, error) { return builder.KAryTreeTopology(2, 1) },
			wantName: "k_ary_tree_topology(2, 1)",
			wantV:    3, wantE: 2,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 2, degree(t, g, 0))
				assert.Equal(t, 1, degree(t, g, 1))
				assert.Equal(t, 1, degree(t, g, 2))
				assert.Equal(t, []int{1, 2}, g.NodesOfType(core.TypeLeaf))
			},
		},
		{
			name:     "KAryTree(3,5)",
			build:    func() (*core.Graph, error) { return builder.KAryTreeTopology(3, 5) },
			wantName: "k_ary_tree_topology(3, 5)",
			wantV:    364, wantE: 363,
		},
		{
			name:     "KAryTree(5,3)",
			build:    func() (*core.Graph, error) { return builder.KAryTreeTopology(5, 3) },
			wantName: "k_ary_tree_topology(5, 3)",
			wantV:    156, wantE: 155,
		},
		{
			name:     "KAryTree(1,4)",
			build:    func() (*core.Graph, error) { return builder.KAryTreeTopology(1, 4) },
			wantName: "k_ary_tree_topology(1, 4)",
			wantV:    5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}}, g.Edges())
			},
		},
		{
			name:     "Dumbbell(15,12)",
			build:    func() (*core.Graph, error) { return builder.DumbbellTopology(15, 12) },
			wantName: "dumbbell_topology(15, 12)",
			wantV:    42, wantE: 41,
		},
		{
			name:     "Dumbbell(2,1)",
			build:    func() (*core.Graph, error) { return builder.DumbbellTopology(2, 1) },
			wantName: "dumbbell_topology(2, 1)",
			wantV:    5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				// Single core node 2 carries both bells.
				assert.Equal(t, []int{0, 1, 3, 4}, neighbors(t, g, 2))
				assert.Equal(t, core.TypeCore, g.NodeType(2))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := tc.build()
			require.NoError(t, err)
			require.NotNil(t, g)

			assert.Equal(t, tc.wantV, g.NodeCount(), "node count")
			assert.Equal(t, tc.wantE, g.EdgeCount(), "edge count")
			assert.Equal(t, tc.wantName, g.Name())
			for _, e := range g.Edges() {
				assert.Less(t, e.From, e.To, "edges are normalized")
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestKAryTree_RolesAndDepths checks degrees per role and depth layering.
func TestKAryTree_RolesAndDepths(t *testing.T) {
	t.Parallel()

	for _, c := range []struct{ k, h int }{{3, 5}, {5, 3}, {2, 1}, {1, 3}, {4, 2}} {
		c := c
		t.Run(fmt.Sprintf("k=%d,h=%d", c.k, c.h), func(t *testing.T) {
			t.Parallel()
			g, err := builder.KAryTreeTopology(c.k, c.h)
			require.NoError(t, err)

			for _, v := range g.Nodes() {
				d, ok := g.NodeDepth(v)
				require.True(t, ok, "node %d has depth", v)
				switch g.NodeType(v) {
				case core.TypeRoot:
					assert.Equal(t, 0, d)
					assert.Equal(t, c.k, degree(t, g, v))
				case core.TypeIntermediate:
					assert.Greater(t, d, 0)
					assert.Less(t, d, c.h)
					assert.Equal(t, c.k+1, degree(t, g, v))
				case core.TypeLeaf:
					assert.Equal(t, c.h, d)
					assert.Equal(t, 1, degree(t, g, v))
				default:
					t.Fatalf("node %d: unexpected type %q", v, g.NodeType(v))
				}
			}
			for _, e := range g.Edges() {
				du, _ := g.NodeDepth(e.From)
				dv, _ := g.NodeDepth(e.To)
				assert.Equal(t, du+1, dv, "edge %d-%d", e.From, e.To)
				assert.Equal(t, (e.To-1)/c.k, e.From, "parent arithmetic")
			}
			assert.Len(t, g.NodesOfType(core.TypeRoot), 1)
		})
	}
}

// TestDumbbell_Layout checks role ranges and attachment points.
func TestDumbbell_Layout(t *testing.T) {
	t.Parallel()

	const m, n = 15, 12
	g, err := builder.DumbbellTopology(m, n)
	require.NoError(t, err)

	for i := 0; i < m; i++ {
		assert.Equal(t, core.TypeLeftBell, g.NodeType(i))
		assert.Equal(t, []int{m}, neighbors(t, g, i))
	}
	for i := m; i < m+n; i++ {
		assert.Equal(t, core.TypeCore, g.NodeType(i))
	}
	for i := m; i < m+n-1; i++ {
		assert.True(t, g.HasEdge(i, i+1), "core path %d-%d", i, i+1)
	}
	for i := m + n; i < 2*m+n; i++ {
		assert.Equal(t, core.TypeRightBell, g.NodeType(i))
		assert.Equal(t, []int{m + n - 1}, neighbors(t, g, i))
	}
	assert.Equal(t, m+1, degree(t, g, m))
	assert.Equal(t, m+1, degree(t, g, m+n-1))
	assert.Equal(t, []core.Param{{Name: "m", Value: m}, {Name: "n", Value: n}}, g.Params())
	assert.Equal(t, string(builder.KindDumbbell), g.Kind())
}

// TestBuilders_InvalidArgument verifies range checks on every generator.
func TestBuilders_InvalidArgument(t *testing.T) {
	t.Parallel()

	cases := map[string]func() (*core.Graph, error){
		"Line(0)":               func() (*core.Graph, error) { return builder.LineTopology(0) },
		"Line(-1)":              func() (*core.Graph, error) { return builder.LineTopology(-1) },
		"Ring(0)":               func() (*core.Graph, error) { return builder.RingTopology(0) },
		"Ring(-1)":              func() (*core.Graph, error) { return builder.RingTopology(-1) },
		"Star(0)":               func() (*core.Graph, error) { return builder.StarTopology(0) },
		"Star(-1)":              func() (*core.Graph, error) { return builder.StarTopology(-1) },
		"FullMesh(0)":           func() (*core.Graph, error) { return builder.FullMeshTopology(0) },
		"FullMesh(-1)":          func() (*core.Graph, error) { return builder.FullMeshTopology(-1) },
		"KAryTree(0,3)":         func() (*core.Graph, error) { return builder.KAryTreeTopology(0, 3) },
		"KAryTree(-1,3)":        func() (*core.Graph, error) { return builder.KAryTreeTopology(-1, 3) },
		"KAryTree(3,0)":         func() (*core.Graph, error) { return builder.KAryTreeTopology(3, 0) },
		"KAryTree(3,-1)":        func() (*core.Graph, error) { return builder.KAryTreeTopology(3, -1) },
		"KAryTree(2,100)":       func() (*core.Graph, error) { return builder.KAryTreeTopology(2, 100) },
		"Dumbbell(1,3)":         func() (*core.Graph, error) { return builder.DumbbellTopology(1, 3) },
		"Dumbbell(0,3)":         func() (*core.Graph, error) { return builder.DumbbellTopology(0, 3) },
		"Dumbbell(3,0)":         func() (*core.Graph, error) { return builder.DumbbellTopology(3, 0) },
		"Dumbbell(-1,-1)":       func() (*core.Graph, error) { return builder.DumbbellTopology(-1, -1) },
		"Star(MaxInt)":          func() (*core.Graph, error) { return builder.StarTopology(math.MaxInt) },
		"Dumbbell(MaxInt/2,2)":  func() (*core.Graph, error) { return builder.DumbbellTopology(math.MaxInt/2, 2) },
		"Dumbbell(2,MaxInt-3)":  func() (*core.Graph, error) { return builder.DumbbellTopology(2, math.MaxInt-3) },
		"Generate(star,MaxInt)": func() (*core.Graph, error) { return builder.Generate(builder.KindStar, uint64(math.MaxInt)) },
	}
	for name, fn := range cases {
		fn := fn
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g, err := fn()
			require.ErrorIs(t, err, builder.ErrInvalidArgument)
			assert.NotErrorIs(t, err, builder.ErrTypeMismatch)
			assert.Nil(t, g, "no partial graph on failure")
		})
	}
}

// TestGenerate covers dispatch, argument typing and arity.
func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("integer kinds", func(t *testing.T) {
		for _, arg := range []interface{}{10, int8(10), int16(10), int32(10), int64(10),
			uint(10), uint8(10), uint16(10), uint32(10), uint64(10)} {
			g, err := builder.Generate(builder.KindRing, arg)
			require.NoError(t, err, "%T", arg)
			assert.Equal(t, 10, g.EdgeCount())
		}
	})

	t.Run("every kind", func(t *testing.T) {
		args := map[builder.Kind][]interface{}{
			builder.KindLine:     {8},
			builder.KindRing:     {10},
			builder.KindStar:     {10},
			builder.KindFullMesh: {10},
			builder.KindKAryTree: {3, 5},
			builder.KindDumbbell: {15, 12},
		}
		for _, k := range builder.Kinds() {
			g, err := builder.Generate(k, args[k]...)
			require.NoError(t, err, k)
			assert.Equal(t, string(k), g.Kind())
			assert.Len(t, args[k], builder.Arity(k))
		}
	})

	typeMismatch := []struct {
		kind builder.Kind
		args []interface{}
	}{
		{builder.KindRing, []interface{}{"String"}},
		{builder.KindStar, []interface{}{"String"}},
		{builder.KindFullMesh, []interface{}{"String"}},
		{builder.KindLine, []interface{}{10.0}},
		{builder.KindLine, []interface{}{true}},
		{builder.KindLine, []interface{}{nil}},
		{builder.KindKAryTree, []interface{}{2, "3"}},
		{builder.KindDumbbell, []interface{}{"String", 3}},
		{builder.KindDumbbell, []interface{}{3, 2.5}},
	}
	for _, tc := range typeMismatch {
		tc := tc
		t.Run(fmt.Sprintf("mismatch %s%v", tc.kind, tc.args), func(t *testing.T) {
			g, err := builder.Generate(tc.kind, tc.args...)
			require.ErrorIs(t, err, builder.ErrTypeMismatch)
			assert.Nil(t, g)
		})
	}

	t.Run("type checked before range", func(t *testing.T) {
		_, err := builder.Generate(builder.KindDumbbell, -1, "x")
		require.ErrorIs(t, err, builder.ErrTypeMismatch)
	})

	invalid := []struct {
		kind builder.Kind
		args []interface{}
	}{
		{"hypercube", []interface{}{3}},
		{builder.KindRing, nil},
		{builder.KindRing, []interface{}{1, 2}},
		{builder.KindKAryTree, []interface{}{2}},
		{builder.KindRing, []interface{}{0}},
		{builder.KindDumbbell, []interface{}{1, 3}},
		{builder.KindLine, []interface{}{uint64(1) << 63}},
	}
	for _, tc := range invalid {
		tc := tc
		t.Run(fmt.Sprintf("invalid %s%v", tc.kind, tc.args), func(t *testing.T) {
			g, err := builder.Generate(tc.kind, tc.args...)
			require.ErrorIs(t, err, builder.ErrInvalidArgument)
			assert.Nil(t, g)
		})
	}
}

// TestKinds_Introspection covers Kinds, ParseKind, Arity and ParamNames.
func TestKinds_Introspection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []builder.Kind{
		builder.KindLine, builder.KindRing, builder.KindStar,
		builder.KindFullMesh, builder.KindKAryTree, builder.KindDumbbell,
	}, builder.Kinds())

	ks := builder.Kinds()
	ks[0] = "mutated"
	assert.Equal(t, builder.KindLine, builder.Kinds()[0], "Kinds returns a copy")

	for in, want := range map[string]builder.Kind{
		"ring":                builder.KindRing,
		" Full_Mesh ":         builder.KindFullMesh,
		"k_ary_tree_topology": builder.KindKAryTree,
		"dumbbell_topology":   builder.KindDumbbell,
	} {
		got, err := builder.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := builder.ParseKind("torus")
	require.ErrorIs(t, err, builder.ErrInvalidArgument)

	assert.Equal(t, []string{"k", "h"}, builder.ParamNames(builder.KindKAryTree))
	assert.Equal(t, []string{"m", "n"}, builder.ParamNames(builder.KindDumbbell))
	assert.Nil(t, builder.ParamNames("torus"))
	assert.Equal(t, 1, builder.Arity(builder.KindStar))
	assert.Equal(t, 0, builder.Arity("torus"))
	assert.True(t, builder.KindRing.Valid())
	assert.False(t, builder.Kind("torus").Valid())
}

// TestBuilders_FreshGraphs verifies that repeated calls never share state.
func TestBuilders_FreshGraphs(t *testing.T) {
	t.Parallel()

	a, err := builder.StarTopology(3)
	require.NoError(t, err)
	b, err := builder.StarTopology(3)
	require.NoError(t, err)

	require.NoError(t, a.AddEdge(1, 2))
	assert.False(t, b.HasEdge(1, 2))
	assert.Equal(t, 3, b.EdgeCount())
}
