// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_cycle.go - implementation of the Cycle(n) generator.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits ring pairs (i, (i+1) mod n) for i=0..n-1; the closing pair (n-1, 0) is last.
//
// Complexity:
//   - Time: O(n). Space: O(n).

package builder

// Cycle returns the simple cycle C_n.
func Cycle(n int) (Topology, error) {
	if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
		return Topology{}, err
	}

	t := Topology{Order: n, Pairs: make([][2]int, 0, n)}
	appendRing(&t, 0, n)

	return t, nil
}

// appendRing emits the ring over indices first..first+size-1 in stable order.
func appendRing(t *Topology, first, size int) {
	for i := 0; i < size; i++ {
		t.Pairs = append(t.Pairs, [2]int{first + i, first + (i+1)%size})
	}
}
