// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_complete.go - implementation of the Complete(n) generator.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every unordered pair (i, j) with i < j, i asc then j asc. No self-loops.
//
// Complexity:
//   - Time: O(n²). Space: O(n²) for n(n-1)/2 pairs.

package builder

// Complete returns the complete simple graph K_n.
func Complete(n int) (Topology, error) {
	if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
		return Topology{}, err
	}

	t := Topology{Order: n, Pairs: make([][2]int, 0, n*(n-1)/2)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			t.Pairs = append(t.Pairs, [2]int{i, j})
		}
	}

	return t, nil
}
