// Package ugraph is a small in-memory library for storing undirected graphs
// with typed data on nodes and on edges.
//
// What is ugraph?
//
//	A generic, zero-magic container plus fixture tooling:
//		• core:    Graph[N, ND, ED] - store and look up node and edge payloads
//		• builder: deterministic fixture topologies (path, cycle, star, wheel,
//		           complete, bipartite, grid, random sparse) applied to any Graph
//
// Identifiers can be any comparable type: strings, ints, structs, uuid.UUID.
// Edges are undirected: the payload written for (u, v) is readable as (v, u).
// There are no traversal or path algorithms and nothing is ever removed.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewGraph[string, int, int]()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "D", 1)
//	g.AddEdge("D", "C", 1)
//	g.AddEdge("C", "A", 1)
//
// represents a square with four nodes and four edges; the nodes are
// placeholders until AddNode gives them data.
//
// See examples/ for a runnable program.
//
//	go get github.com/katalvlaran/ugraph
package ugraph
