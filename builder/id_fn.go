// SPDX-License-Identifier: MIT

// Package builder provides identifier schemes that map zero-based vertex
// indices to node identifiers for Apply.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node identifier from its zero-based vertex index.
// It must be a pure, deterministic function and injective over the indices
// it is used with; Apply rejects schemes that collide (ErrDuplicateID).
type IDFn[N comparable] func(idx int) N

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) time where d = number of digits in idx.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// IndexIDFn uses the index itself as identifier (for int-keyed graphs).
func IndexIDFn(idx int) int {
	return idx
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// AlphanumericIDFn returns a base-36 string for idx, e.g. 0→"0", 10→"a", 35→"z", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn returns the “Excel-style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(k) time where k ≈ log₂₆(idx).
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexIDFn returns the lowercase hexadecimal representation of idx, e.g. 255→"ff".
// Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn[string] {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// GridIDFn returns the "r,c" coordinate scheme for a grid with cols columns,
// matching the row-major index layout produced by Grid.
// Panics if cols < 1 (option-style validation at construction).
func GridIDFn(cols int) IDFn[string] {
	if cols < MinGridDim {
		panic(fmt.Sprintf("GridIDFn: cols must be ≥ %d, got %d", MinGridDim, cols))
	}
	return func(idx int) string {
		return strconv.Itoa(idx/cols) + "," + strconv.Itoa(idx%cols)
	}
}
