// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodesData() are snapshots in unspecified order.
//
// AI-Hints (file):
//   - NodeData reports absent for placeholders created by AddEdge; use HasNode or Node
//     when membership and payload presence must be told apart.

package core

// AddNode inserts id with payload data, or overwrites the payload of an existing id.
//
// Implementation:
//   - Stage 1: Write Some(data) into the node catalog (last write wins).
//   - Stage 2: For a previously unknown id only, bootstrap an empty adjacency entry.
//
// Behavior highlights:
//   - Overwriting never touches adjacency: existing edges survive re-labeling.
//   - Overwriting a placeholder (created by AddEdge) turns it into a regular node.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[N, ND, ED]) AddNode(id N, data ND) {
	g.nodes[id] = Some(data)
	ensureAdjacency(g, id)
}

// NodeData returns the payload stored for id.
// The bool is false when id was never added, and also when id is a placeholder
// endpoint created by AddEdge that has not received a payload yet.
//
// Complexity: O(1).
func (g *Graph[N, ND, ED]) NodeData(id N) (ND, bool) {
	return g.nodes[id].Get()
}

// Node returns the payload of id together with its membership.
//
//	(Some(d), true)  - regular node with payload d
//	(None,    true)  - placeholder endpoint
//	(None,    false) - unknown identifier
//
// Complexity: O(1).
func (g *Graph[N, ND, ED]) Node(id N) (Payload[ND], bool) {
	p, ok := g.nodes[id]
	return p, ok
}

// HasNode reports whether id is known, as a regular node or as a placeholder.
func (g *Graph[N, ND, ED]) HasNode(id N) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns a snapshot of all node identifiers, placeholders included.
// The slice is freshly allocated; order is unspecified.
//
// Complexity: O(V).
func (g *Graph[N, ND, ED]) Nodes() []N {
	out := make([]N, 0, len(g.nodes))
	var id N
	for id = range g.nodes {
		out = append(out, id)
	}

	return out
}

// NodesData returns a snapshot of every (identifier, payload) pair.
// Placeholder endpoints appear with an absent payload.
//
// Complexity: O(V).
func (g *Graph[N, ND, ED]) NodesData() []NodeEntry[N, ND] {
	out := make([]NodeEntry[N, ND], 0, len(g.nodes))
	var (
		id N
		p  Payload[ND]
	)
	for id, p = range g.nodes {
		out = append(out, NodeEntry[N, ND]{ID: id, Data: p})
	}

	return out
}

// NodeCount returns the number of known identifiers, placeholders included.
func (g *Graph[N, ND, ED]) NodeCount() int {
	return len(g.nodes)
}
