// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries and the internal helpers that keep the node catalog
//       and the adjacency map in step.
//
// Invariants maintained here:
//   - ensureAdjacency is the only place that creates an adjacency entry.
//   - ensureNode is the only place that creates a placeholder node.

package core

import "maps"

// Neighbors returns a copy of the adjacency entry of id: neighbor → edge payload.
// The bool is false when id is unknown. A placeholder or isolated node yields
// an empty, non-nil map.
//
// Complexity: O(deg(id)).
func (g *Graph[N, ND, ED]) Neighbors(id N) (map[N]ED, bool) {
	nbrs, ok := g.edges[id]
	if !ok {
		return nil, false
	}

	return maps.Clone(nbrs), true
}

// Degree returns the number of distinct neighbors of id (0 for unknown ids).
// A self-loop contributes one neighbor, the node itself.
func (g *Graph[N, ND, ED]) Degree(id N) int {
	return len(g.edges[id])
}

// ensureAdjacency creates an empty adjacency entry for id if it has none.
// Existing entries are left untouched.
func ensureAdjacency[N comparable, ND any, ED any](g *Graph[N, ND, ED], id N) {
	if _, ok := g.edges[id]; ok {
		return
	}
	g.edges[id] = make(map[N]ED, g.adjCap)
}

// ensureNode registers id as a placeholder (absent payload) when it is unknown,
// and guarantees it has an adjacency entry. Known nodes keep their payload.
func ensureNode[N comparable, ND any, ED any](g *Graph[N, ND, ED], id N) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = None[ND]()
	}
	ensureAdjacency(g, id)
}
