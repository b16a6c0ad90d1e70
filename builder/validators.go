// SPDX-License-Identifier: MIT

// Package builder provides validation helpers to enforce
// parameter contracts in the topology generators.
//
// Each function returns an error wrapping the matching sentinel
// when its precondition is violated.
package builder

import "fmt"

// validateMin ensures that got ≥ min.
// Returns "<method>: <name>=<got> < min=<min>: builder: parameter too small" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// wrapNeedRand reports a missing RNG for a stochastic generator.
func wrapNeedRand(method string) error {
	return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
}
