// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// constants.go - method names and minimum parameter values.

package builder

//-----------------------------------------------------------------------------
// Generator Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodLine is the canonical name for the LineTopology generator.
	MethodLine = "LineTopology"
	// MethodRing is the canonical name for the RingTopology generator.
	MethodRing = "RingTopology"
	// MethodStar is the canonical name for the StarTopology generator.
	MethodStar = "StarTopology"
	// MethodFullMesh is the canonical name for the FullMeshTopology generator.
	MethodFullMesh = "FullMeshTopology"
	// MethodKAryTree is the canonical name for the KAryTreeTopology generator.
	MethodKAryTree = "KAryTreeTopology"
	// MethodDumbbell is the canonical name for the DumbbellTopology generator.
	MethodDumbbell = "DumbbellTopology"
	// MethodGenerate is the canonical name for the Generate dispatcher.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Vertex ID Defaults
//-----------------------------------------------------------------------------

// RootNodeID is the identifier of the hub in StarTopology and of the root in
// KAryTreeTopology.
const RootNodeID = 0

//-----------------------------------------------------------------------------
// Minimum Parameter Values
//-----------------------------------------------------------------------------

// MinLineNodes is the smallest line: a single isolated node.
const MinLineNodes = 1

// MinRingNodes is the smallest ring. Rings of 1 and 2 nodes degrade to a single
// node and a single edge respectively; loops and parallel edges are never emitted.
const MinRingNodes = 1

// MinStarLeaves is the smallest number of leaves attached to the root.
const MinStarLeaves = 1

// MinFullMeshNodes is the smallest full mesh: a single node, no edges.
const MinFullMeshNodes = 1

// MinTreeArity is the smallest branching factor k of a k-ary tree.
const MinTreeArity = 1

// MinTreeHeight is the smallest tree height h. A height-0 tree is a bare root
// whose degree could not equal k.
const MinTreeHeight = 1

// MinBellNodes is the smallest bell size m of a dumbbell.
const MinBellNodes = 2

// MinCoreNodes is the smallest core path length n of a dumbbell.
const MinCoreNodes = 1
