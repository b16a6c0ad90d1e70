// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by topology generators, ensuring
// consistent minimums and error prefixes across all of them.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPath is the canonical name for the Path generator.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle generator.
	MethodCycle = "Cycle"
	// MethodStar is the canonical name for the Star generator.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel generator.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete generator.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite generator.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodGrid is the canonical name for the Grid generator.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse generator.
	MethodRandomSparse = "RandomSparse"
	// MethodApply is the canonical name used by Apply.
	MethodApply = "Apply"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinCycleNodes is the smallest meaningful size for a cycle (ring).
// Fewer than 3 nodes cannot form a ring without loops or repeated pairs.
const MinCycleNodes = 3

// MinStarNodes is the smallest meaningful size for a star: hub plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel: a 3-ring plus a hub.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest size for K_n (K_1 is a single node).
const MinCompleteNodes = 1

// MinPartition is the smallest size of either side of K_{n1,n2}.
const MinPartition = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// MinRandomSparseNodes is the smallest vertex count for RandomSparse.
const MinRandomSparseNodes = 1

// HubIndex is the vertex index of the hub in Star and Wheel.
const HubIndex = 0

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for RandomSparse p, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for RandomSparse p, inclusive.
const MaxProbability = 1.0
