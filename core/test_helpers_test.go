// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvtopo/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep tests stdlib-only in this package.

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvtopo/core"
)

// Common node IDs used across core tests.
const (
	Node0 = 0
	Node1 = 1
	Node2 = 2
	Node3 = 3

	NodeNegative = -1
	NodeMissing  = 99
)

// Concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// NewTriangle returns the 3-cycle 0-1-2 with node 0 labeled as root.
func NewTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithName("triangle"), core.WithKind("ring"), core.WithParam("n", 3))
	MustNoError(t, g.AddEdge(Node0, Node1), "AddEdge(0,1)")
	MustNoError(t, g.AddEdge(Node1, Node2), "AddEdge(1,2)")
	MustNoError(t, g.AddEdge(Node2, Node0), "AddEdge(2,0)")
	MustNoError(t, g.SetNodeAttr(Node0, core.AttrType, core.TypeRoot), "SetNodeAttr(0,type)")

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs FAILS the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want error %v, got %v", op, target, err)
	}
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()
	if !cond {
		t.Fatalf("%s: expected true", op)
	}
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()
	if cond {
		t.Fatalf("%s: expected false", op)
	}
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", op, got, want)
	}
}

// MustEqualInts FAILS the test unless the slices are deeply equal.
func MustEqualInts(t *testing.T, got, want []int, op string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
}
