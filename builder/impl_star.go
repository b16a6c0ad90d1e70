// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_star.go - implementation of the Star(n) generator.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is vertex HubIndex (0); leaves are 1..n-1.
//   - Emits spokes (hub, leaf) in ascending leaf order.
//
// Complexity:
//   - Time: O(n). Space: O(n).

package builder

// Star returns a star with one hub and n-1 leaves.
func Star(n int) (Topology, error) {
	if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
		return Topology{}, err
	}

	t := Topology{Order: n, Pairs: make([][2]int, 0, n-1)}
	for leaf := 1; leaf < n; leaf++ {
		t.Pairs = append(t.Pairs, [2]int{HubIndex, leaf})
	}

	return t, nil
}
