// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// AI-HINT (file):
//   - Payloads are copied by value. If ND or ED hold pointers, maps or slices,
//     the clone shares what they reference.
//   - The adjacency size hint carries over to the clone.

package core

import "maps"

// CloneEmpty returns a new Graph with the same nodes (payloads and placeholders
// included) and no edges.
//
// Complexity: O(V).
func (g *Graph[N, ND, ED]) CloneEmpty() *Graph[N, ND, ED] {
	clone := &Graph[N, ND, ED]{
		nodes:  maps.Clone(g.nodes),
		edges:  make(map[N]map[N]ED, len(g.edges)),
		adjCap: g.adjCap,
	}
	var id N
	for id = range clone.nodes {
		clone.edges[id] = make(map[N]ED, g.adjCap)
	}

	return clone
}

// Clone returns an independent copy of g: nodes, adjacency and edge count.
// Later writes to either graph are not visible in the other.
//
// Complexity: O(V + E).
func (g *Graph[N, ND, ED]) Clone() *Graph[N, ND, ED] {
	clone := &Graph[N, ND, ED]{
		nodes:     maps.Clone(g.nodes),
		edges:     make(map[N]map[N]ED, len(g.edges)),
		edgeCount: g.edgeCount,
		adjCap:    g.adjCap,
	}
	var (
		id   N
		nbrs map[N]ED
	)
	for id, nbrs = range g.edges {
		clone.edges[id] = maps.Clone(nbrs)
	}

	return clone
}
