// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_grid.go - implementation of the Grid(rows, cols) generator.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex (r, c) has index r*cols + c (row-major); see GridIDFn for "r,c" labels.
//   - For each cell in row-major order emit Right then Bottom if present.
//
// Complexity:
//   - Time: O(rows·cols). Space: O(rows·cols).

package builder

// Grid returns a rows×cols orthogonal 4-neighborhood grid.
func Grid(rows, cols int) (Topology, error) {
	if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
		return Topology{}, err
	}
	if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
		return Topology{}, err
	}

	t := Topology{Order: rows * cols, Pairs: make([][2]int, 0, rows*(cols-1)+cols*(rows-1))}
	var r, c, u int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			u = r*cols + c
			if c+1 < cols {
				t.Pairs = append(t.Pairs, [2]int{u, u + 1})
			}
			if r+1 < rows {
				t.Pairs = append(t.Pairs, [2]int{u, u + cols})
			}
		}
	}

	return t, nil
}
