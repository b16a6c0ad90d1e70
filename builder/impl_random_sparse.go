// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_random_sparse.go - implementation of the RandomSparse(n, p) generator.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - RNG is required only for 0 < p < 1 (else ErrNeedRandSource).
//   - Each unordered pair {i, j}, i < j, is included independently with probability p.
//   - No self-loops.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(E) for the pairs kept.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Fixed seed ⇒ identical topology.

package builder

// RandomSparse returns an Erdős–Rényi G(n, p) sample.
func RandomSparse(n int, p float64, opts ...BuilderOption) (Topology, error) {
	if err := validateMin(MethodRandomSparse, "n", n, MinRandomSparseNodes); err != nil {
		return Topology{}, err
	}
	if err := validateProbability(MethodRandomSparse, p); err != nil {
		return Topology{}, err
	}

	cfg := newBuilderConfig(opts...)
	stochastic := p > MinProbability && p < MaxProbability
	if stochastic && cfg.rng == nil {
		return Topology{}, wrapNeedRand(MethodRandomSparse)
	}

	t := Topology{Order: n}
	if p == MinProbability {
		return t, nil
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			// p == 1 keeps every pair without consuming randomness.
			if stochastic && cfg.rng.Float64() >= p {
				continue
			}
			t.Pairs = append(t.Pairs, [2]int{i, j})
		}
	}

	return t, nil
}
