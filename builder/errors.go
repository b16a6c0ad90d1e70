// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with fmt.Errorf("<Method>: ...: %w", ..., ErrX).
//   • Generators and Apply MUST NOT panic at runtime; validation panics are
//     confined to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, partition size)
// is smaller than the allowed minimum for the requested generator.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic generator requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilGraph indicates that Apply was called with a nil target graph.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrNilIDFn indicates that Apply was called without an identifier scheme.
var ErrNilIDFn = errors.New("builder: id function is nil")

// ErrDuplicateID indicates that the identifier scheme mapped two distinct
// vertex indices to the same node identifier, which would silently merge them.
var ErrDuplicateID = errors.New("builder: duplicate node id")

// ErrIndexOutOfRange indicates a Topology pair referencing an index outside [0, Order).
var ErrIndexOutOfRange = errors.New("builder: vertex index out of range")
