// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_bipartite.go - implementation of the CompleteBipartite(n1, n2) generator.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side is 0..n1-1, right side is n1..n1+n2-1.
//   - Emits every cross pair (l, r), l asc then r asc.
//
// Complexity:
//   - Time: O(n1·n2). Space: O(n1·n2).

package builder

// CompleteBipartite returns K_{n1,n2}.
func CompleteBipartite(n1, n2 int) (Topology, error) {
	if err := validateMin(MethodCompleteBipartite, "n1", n1, MinPartition); err != nil {
		return Topology{}, err
	}
	if err := validateMin(MethodCompleteBipartite, "n2", n2, MinPartition); err != nil {
		return Topology{}, err
	}

	t := Topology{Order: n1 + n2, Pairs: make([][2]int, 0, n1*n2)}
	for l := 0; l < n1; l++ {
		for r := n1; r < n1+n2; r++ {
			t.Pairs = append(t.Pairs, [2]int{l, r})
		}
	}

	return t, nil
}

// PartitionIDFn labels the left side leftPrefix+i and the right side
// rightPrefix+(i-n1), matching the index layout of CompleteBipartite(n1, _).
func PartitionIDFn(n1 int, leftPrefix, rightPrefix string) IDFn[string] {
	left, right := SymbolNumberIDFn(leftPrefix), SymbolNumberIDFn(rightPrefix)
	return func(idx int) string {
		if idx < n1 {
			return left(idx)
		}
		return right(idx - n1)
	}
}
