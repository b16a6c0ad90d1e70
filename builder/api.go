// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// api.go - Topology, payload function types and the Apply orchestrator.
//
// Design contract (strict):
//   - Generators (impl_*.go) describe shapes over vertex indices 0..Order-1 and
//     know nothing about identifier or payload types.
//   - Apply is the single place where a Topology meets a typed core.Graph.
//   - Determinism: same Topology, ID scheme and payload functions ⇒ identical graphs.
//   - Safety: never panic in Apply; return sentinel errors.
//
// AI-Hints (practical):
//   - Apply several topologies to one graph to compose fixtures; shared
//     identifiers merge (AddNode overwrites, AddEdge overwrites).
//   - Pass a nil NodeFn to leave endpoints as placeholders (absent payload).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// Topology is an index-level description of an undirected graph: Order vertices
// numbered 0..Order-1 and the vertex pairs to connect, in emission order.
// Pairs may repeat or appear reversed; Apply writes them in order, so later
// pairs overwrite the payload of earlier ones.
type Topology struct {
	// Order is the number of vertices.
	Order int

	// Pairs lists the edges as index pairs {u, v}.
	Pairs [][2]int
}

// Size returns the number of pairs (equal to the edge count for generated topologies).
func (t Topology) Size() int { return len(t.Pairs) }

// NodeFn produces the payload of the vertex at idx.
type NodeFn[ND any] func(idx int) ND

// EdgeFn produces the payload of the edge between vertex indices u and v.
type EdgeFn[ED any] func(u, v int) ED

// Apply writes topology t into g.
//
// Implementation:
//   - Stage 1: Validate the target (ErrNilGraph), the ID scheme (ErrNilIDFn) and every pair index (ErrIndexOutOfRange).
//   - Stage 2: Resolve identifiers for 0..Order-1 and reject collisions (ErrDuplicateID).
//   - Stage 3: If nodes != nil, AddNode every vertex in ascending index order.
//   - Stage 4: AddEdge every pair in emission order; payload edges(u,v), or the
//     zero ED when edges is nil.
//
// Behavior highlights:
//   - Validation happens before any mutation: a failing Apply leaves g untouched.
//   - With nodes == nil, only pair endpoints enter g (as placeholders); isolated
//     vertices of t are not represented.
//
// Complexity:
//   - Time O(Order + len(Pairs)), Space O(Order) for the resolved identifiers.
func Apply[N comparable, ND any, ED any](g *core.Graph[N, ND, ED], t Topology, ids IDFn[N], nodes NodeFn[ND], edges EdgeFn[ED]) error {
	if g == nil {
		return fmt.Errorf("%s: %w", MethodApply, ErrNilGraph)
	}
	if ids == nil {
		return fmt.Errorf("%s: %w", MethodApply, ErrNilIDFn)
	}

	var (
		i    int
		pair [2]int
	)
	for i, pair = range t.Pairs {
		if pair[0] < 0 || pair[0] >= t.Order || pair[1] < 0 || pair[1] >= t.Order {
			return fmt.Errorf("%s: pair %d = {%d,%d} outside [0,%d): %w",
				MethodApply, i, pair[0], pair[1], t.Order, ErrIndexOutOfRange)
		}
	}

	// Resolve identifiers once; a collision would silently merge two vertices.
	resolved := make([]N, t.Order)
	seen := make(map[N]int, t.Order)
	var (
		id    N
		prev  int
		taken bool
	)
	for i = 0; i < t.Order; i++ {
		id = ids(i)
		if prev, taken = seen[id]; taken {
			return fmt.Errorf("%s: indices %d and %d map to %v: %w", MethodApply, prev, i, id, ErrDuplicateID)
		}
		seen[id] = i
		resolved[i] = id
	}

	if nodes != nil {
		for i = 0; i < t.Order; i++ {
			g.AddNode(resolved[i], nodes(i))
		}
	}

	var data ED
	for _, pair = range t.Pairs {
		if edges != nil {
			data = edges(pair[0], pair[1])
		}
		g.AddEdge(resolved[pair[0]], resolved[pair[1]], data)
	}

	return nil
}

// ConstNode returns a NodeFn that assigns v to every vertex.
func ConstNode[ND any](v ND) NodeFn[ND] {
	return func(int) ND { return v }
}

// ConstEdge returns an EdgeFn that assigns v to every edge.
func ConstEdge[ED any](v ED) EdgeFn[ED] {
	return func(int, int) ED { return v }
}
