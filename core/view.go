// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - InducedSubgraph keeps only nodes accepted by keep and edges with both endpoints kept.

package core

// InducedSubgraph returns a new Graph induced by the nodes for which keep
// returns true: those nodes with their payloads (placeholders stay placeholders),
// and every edge whose endpoints are both kept. A nil keep keeps nothing.
//
// Complexity: O(V + E). keep is called once per node.
func InducedSubgraph[N comparable, ND any, ED any](g *Graph[N, ND, ED], keep func(N) bool) *Graph[N, ND, ED] {
	out := &Graph[N, ND, ED]{
		nodes:  make(map[N]Payload[ND]),
		edges:  make(map[N]map[N]ED),
		adjCap: g.adjCap,
	}
	if keep == nil {
		return out
	}

	// Copy only kept nodes; keep is evaluated exactly once per node.
	var (
		id N
		p  Payload[ND]
	)
	for id, p = range g.nodes {
		if keep(id) {
			out.nodes[id] = p
			out.edges[id] = make(map[N]ED, g.adjCap)
		}
	}

	// Copy edges between kept nodes. Both directions are visited, so the mirror
	// entries come out naturally; count each pair on its first visit.
	var (
		u, v  N
		nbrs  map[N]ED
		data  ED
		found bool
	)
	for u, nbrs = range g.edges {
		if _, found = out.nodes[u]; !found {
			continue
		}
		for v, data = range nbrs {
			if _, found = out.nodes[v]; !found {
				continue
			}
			if _, found = out.edges[u][v]; !found {
				out.edgeCount++
			}
			out.edges[u][v] = data
			out.edges[v][u] = data
		}
	}

	return out
}
