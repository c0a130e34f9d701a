// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lvtopo/core"
)

// TestGraph_AddNode VERIFIES AddNode/HasNode lifecycle rules.
func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()

	MustErrorIs(t, g.AddNode(NodeNegative), core.ErrNegativeNodeID, "AddNode(-1)")

	MustNoError(t, g.AddNode(Node0), "AddNode(0)")
	MustTrue(t, g.HasNode(Node0), "HasNode(0)")

	// Duplicate AddNode is a no-op and keeps metadata.
	MustNoError(t, g.SetNodeAttr(Node0, core.AttrType, core.TypeLeaf), "SetNodeAttr(0)")
	MustNoError(t, g.AddNode(Node0), "AddNode(0) duplicate")
	MustEqualInt(t, g.NodeCount(), 1, "NodeCount after duplicate")
	MustTrue(t, g.NodeType(Node0) == core.TypeLeaf, "NodeType(0) survives duplicate AddNode")

	MustFalse(t, g.HasNode(NodeMissing), "HasNode(missing)")
}

// TestGraph_AddEdgeConstraints VERIFIES loop, duplicate and negative-ID rejection.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	MustErrorIs(t, g.AddEdge(Node1, Node1), core.ErrLoopNotAllowed, "AddEdge(1,1)")
	MustErrorIs(t, g.AddEdge(NodeNegative, Node1), core.ErrNegativeNodeID, "AddEdge(-1,1)")
	MustEqualInt(t, g.NodeCount(), 0, "no nodes created by rejected edges")

	MustNoError(t, g.AddEdge(Node0, Node1), "AddEdge(0,1)")
	MustErrorIs(t, g.AddEdge(Node0, Node1), core.ErrMultiEdgeNotAllowed, "AddEdge(0,1) again")
	MustErrorIs(t, g.AddEdge(Node1, Node0), core.ErrMultiEdgeNotAllowed, "AddEdge(1,0) reversed")

	MustEqualInt(t, g.EdgeCount(), 1, "EdgeCount")
	MustEqualInt(t, g.NodeCount(), 2, "endpoints auto-created")
}

// TestGraph_Queries VERIFIES adjacency symmetry, sorted neighbors and degrees.
func TestGraph_Queries(t *testing.T) {
	g := NewTriangle(t)

	MustTrue(t, g.HasEdge(Node0, Node1), "HasEdge(0,1)")
	MustTrue(t, g.HasEdge(Node1, Node0), "HasEdge(1,0) mirrored")
	MustFalse(t, g.HasEdge(Node0, NodeMissing), "HasEdge(0,missing)")

	nbrs, err := g.Neighbors(Node0)
	MustNoError(t, err, "Neighbors(0)")
	MustEqualInts(t, nbrs, []int{Node1, Node2}, "Neighbors(0)")

	_, err = g.Neighbors(NodeMissing)
	MustErrorIs(t, err, core.ErrNodeNotFound, "Neighbors(missing)")

	d, err := g.Degree(Node2)
	MustNoError(t, err, "Degree(2)")
	MustEqualInt(t, d, 2, "Degree(2)")
	_, err = g.Degree(NodeMissing)
	MustErrorIs(t, err, core.ErrNodeNotFound, "Degree(missing)")

	MustEqualInts(t, g.Nodes(), []int{Node0, Node1, Node2}, "Nodes sorted")
}

// TestGraph_EdgesNormalizedInInsertionOrder VERIFIES Edges() ordering and From<To.
func TestGraph_EdgesNormalizedInInsertionOrder(t *testing.T) {
	g := NewTriangle(t)

	want := []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 2}}
	got := g.Edges()
	if len(got) != len(want) {
		t.Fatalf("Edges: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Edges[%d]: got %v, want %v", i, got[i], want[i])
		}
	}
}

// TestGraph_Attributes VERIFIES node metadata accessors and graph attributes.
func TestGraph_Attributes(t *testing.T) {
	g := NewTriangle(t)

	MustTrue(t, g.NodeType(Node0) == core.TypeRoot, "NodeType(0)")
	MustTrue(t, g.NodeType(Node1) == "", "NodeType(1) unset")
	MustTrue(t, g.NodeType(NodeMissing) == "", "NodeType(missing)")

	_, ok := g.NodeDepth(Node0)
	MustFalse(t, ok, "NodeDepth(0) unset")
	MustNoError(t, g.SetNodeAttr(Node0, core.AttrDepth, 0), "SetNodeAttr(0,depth)")
	d, ok := g.NodeDepth(Node0)
	MustTrue(t, ok && d == 0, "NodeDepth(0) after set")

	MustErrorIs(t, g.SetNodeAttr(NodeMissing, core.AttrType, core.TypeLeaf), core.ErrNodeNotFound, "SetNodeAttr(missing)")
	MustEqualInts(t, g.NodesOfType(core.TypeRoot), []int{Node0}, "NodesOfType(root)")

	MustTrue(t, g.Name() == "triangle", "Name")
	MustTrue(t, g.Kind() == "ring", "Kind")
	n, ok := g.Param("n")
	MustTrue(t, ok && n == 3, "Param(n)")
	g.SetParam("n", 4)
	g.SetParam("extra", 1)
	ps := g.Params()
	MustEqualInt(t, len(ps), 2, "Params len")
	MustTrue(t, ps[0] == core.Param{Name: "n", Value: 4}, "Params[0] overwritten in place")
	_, ok = g.Param("absent")
	MustFalse(t, ok, "Param(absent)")
}

// TestGraph_CloneIsIndependent VERIFIES Clone deep-copies metadata and adjacency.
func TestGraph_CloneIsIndependent(t *testing.T) {
	g := NewTriangle(t)
	c := g.Clone()

	MustEqualInt(t, c.EdgeCount(), g.EdgeCount(), "clone EdgeCount")
	MustTrue(t, c.Name() == g.Name() && c.Kind() == g.Kind(), "clone attributes")

	MustNoError(t, c.AddEdge(Node0, Node3), "clone AddEdge(0,3)")
	MustNoError(t, c.SetNodeAttr(Node0, core.AttrType, core.TypeLeaf), "clone SetNodeAttr")
	c.SetParam("n", 7)

	MustFalse(t, g.HasNode(Node3), "source unaffected by clone AddEdge")
	MustTrue(t, g.NodeType(Node0) == core.TypeRoot, "source metadata unaffected")
	n, _ := g.Param("n")
	MustEqualInt(t, n, 3, "source params unaffected")
}

// TestGraph_Stats VERIFIES degree bounds and role histogram.
func TestGraph_Stats(t *testing.T) {
	g := NewTriangle(t)
	MustNoError(t, g.AddEdge(Node0, Node3), "AddEdge(0,3)")

	s := g.Stats()
	MustEqualInt(t, s.NodeCount, 4, "Stats.NodeCount")
	MustEqualInt(t, s.EdgeCount, 4, "Stats.EdgeCount")
	MustEqualInt(t, s.MinDegree, 1, "Stats.MinDegree")
	MustEqualInt(t, s.MaxDegree, 3, "Stats.MaxDegree")
	MustEqualInt(t, s.TypeCounts[core.TypeRoot], 1, "Stats.TypeCounts[root]")
	MustEqualInt(t, len(s.TypeCounts), 1, "unlabeled nodes not counted")

	empty := core.NewGraph().Stats()
	MustEqualInt(t, empty.MinDegree, 0, "empty MinDegree")
}

// TestGraph_ConcurrentAddEdge VERIFIES concurrent writers and readers do not race.
func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	errCh := make(chan error, NConcurrentAdds)

	for i := 1; i <= NConcurrentAdds; i++ {
		wg.Add(1)
		go func(leaf int) {
			defer wg.Done()
			if err := g.AddEdge(Node0, leaf); err != nil {
				errCh <- err
			}
		}(i)
	}
	for i := 0; i < NReaders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Stats()
			_, _ = g.Neighbors(Node0)
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		MustNoError(t, err, "concurrent AddEdge")
	}
	d, err := g.Degree(Node0)
	MustNoError(t, err, "Degree(0)")
	MustEqualInt(t, d, NConcurrentAdds, "hub degree")
}
