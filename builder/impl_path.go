// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_path.go - implementation of the Path(n) generator.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits pairs (i-1, i) for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(n) for the pair list.

package builder

// Path returns the simple path P_n: 0 - 1 - ... - (n-1).
func Path(n int) (Topology, error) {
	if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
		return Topology{}, err
	}

	t := Topology{Order: n, Pairs: make([][2]int, 0, n-1)}
	for i := 1; i < n; i++ {
		t.Pairs = append(t.Pairs, [2]int{i - 1, i})
	}

	return t, nil
}
