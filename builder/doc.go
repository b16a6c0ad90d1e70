// SPDX-License-Identifier: MIT

// Package builder provides deterministic fixture topologies for core.Graph.
//
// Generators describe a shape over vertex indices 0..Order-1 as a Topology;
// Apply then writes it into any core.Graph[N, ND, ED], turning indices into
// identifiers with an IDFn and attaching payloads with optional NodeFn/EdgeFn.
// Keeping shapes index-based lets one generator serve every identifier and
// payload type.
//
//	t, err := builder.Cycle(5)
//	if err != nil { ... }
//	g := core.NewGraph[string, int, float64]()
//	err = builder.Apply(g, t, builder.SymbolIDFn,
//		func(i int) int { return i },
//		func(u, v int) float64 { return float64(u + v) })
//
// Components:
//
//   - Generators (impl_*.go):
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n)
//     – CompleteBipartite(n1, n2), Grid(rows, cols)
//     – RandomSparse(n, p, opts...) - needs WithSeed/WithRand for 0 < p < 1.
//   - Identifier schemes (IDFn):
//     – DefaultIDFn ("0","1",…), IndexIDFn (0,1,…), SymbolIDFn ("A".."Z"),
//     – AlphanumericIDFn, ExcelColumnIDFn, HexIDFn, SymbolNumberIDFn(prefix),
//     – GridIDFn(cols) ("r,c"), PartitionIDFn(n1, left, right).
//   - Payload helpers: ConstNode, ConstEdge.
//   - Edge weights: WeightFn distributions (Constant, Uniform, Normal,
//     Exponential) and Weights(dist, opts...) to feed them to Apply.
//
// Guarantees:
//
//   - Same inputs (and seed) ⇒ same Topology and the same pair emission order.
//   - Generators and Apply return wrapped sentinel errors and never panic;
//     option constructors (WithRand(nil)) and ID schemes fed indices outside
//     their documented domain do panic.
//   - Apply validates everything before the first write.
package builder
