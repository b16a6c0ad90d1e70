// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_wheel.go - implementation of the Wheel(n) generator.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Hub is vertex HubIndex (0); the rim is the ring over 1..n-1.
//   - Emits rim pairs first (ring order), then spokes (hub, i) for i=1..n-1.
//
// Complexity:
//   - Time: O(n). Space: O(n) for 2(n-1) pairs.

package builder

// Wheel returns W_n = C_{n-1} plus a hub joined to every rim vertex.
func Wheel(n int) (Topology, error) {
	if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
		return Topology{}, err
	}

	rim := n - 1
	t := Topology{Order: n, Pairs: make([][2]int, 0, 2*rim)}
	appendRing(&t, 1, rim)
	for i := 1; i < n; i++ {
		t.Pairs = append(t.Pairs, [2]int{HubIndex, i})
	}

	return t, nil
}
