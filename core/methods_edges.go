// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge writes & queries: AddEdge/EdgeData/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() is a snapshot in unspecified order; each unordered pair appears once.
// AI-HINT (file):
//   - AddEdge never fails and never rejects input: unknown endpoints become
//     placeholder nodes (absent payload), self-loops are stored as one entry.
//   - The payload at (u,v) always equals the payload at (v,u).

package core

// AddEdge records data as the payload of the undirected edge {u, v}.
//
// Steps:
//  1. Register u and v as placeholder nodes if they are unknown.
//  2. Count the pair if it is new.
//  3. Write data at edges[u][v] and mirror it at edges[v][u].
//
// A second AddEdge for the same pair (in either orientation) overwrites the
// payload; it never creates a parallel entry. For u == v both writes hit the
// same map slot, leaving a single self-loop entry.
//
// Complexity: O(1) amortized.
func (g *Graph[N, ND, ED]) AddEdge(u, v N, data ED) {
	ensureNode(g, u)
	ensureNode(g, v)

	if _, exists := g.edges[u][v]; !exists {
		g.edgeCount++
	}

	g.edges[u][v] = data
	g.edges[v][u] = data
}

// EdgeData returns the payload of the edge {u, v}, or false if no such edge exists.
// The result does not depend on argument order.
//
// Complexity: O(1).
func (g *Graph[N, ND, ED]) EdgeData(u, v N) (ED, bool) {
	// A nil inner map (unknown u) yields the zero value and false.
	data, ok := g.edges[u][v]
	return data, ok
}

// HasEdge reports whether the edge {u, v} exists.
func (g *Graph[N, ND, ED]) HasEdge(u, v N) bool {
	_, ok := g.edges[u][v]
	return ok
}

// Edges returns a snapshot of all edges, each unordered pair exactly once.
//
// Implementation:
//   - Walk every adjacency entry and skip pairs whose mirror was already emitted.
//
// Complexity: O(V + E) time, O(E) extra space for the seen-set.
func (g *Graph[N, ND, ED]) Edges() []EdgeEntry[N, ED] {
	out := make([]EdgeEntry[N, ED], 0, g.edgeCount)
	seen := make(map[[2]N]struct{}, g.edgeCount)
	var (
		u, v N
		nbrs map[N]ED
		data ED
	)
	for u, nbrs = range g.edges {
		for v, data = range nbrs {
			if _, dup := seen[[2]N{v, u}]; dup {
				continue
			}
			seen[[2]N{u, v}] = struct{}{}
			out = append(out, EdgeEntry[N, ED]{U: u, V: v, Data: data})
		}
	}

	return out
}

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(1).
func (g *Graph[N, ND, ED]) EdgeCount() int {
	return g.edgeCount
}
