// SPDX-License-Identifier: MIT

// Package core provides Graph, a generic undirected graph container that stores
// typed data on nodes and on edges.
//
// A Graph[N, ND, ED] is keyed by any comparable identifier type N. Node payloads
// are of type ND, edge payloads of type ED. Internally it holds two maps:
//
//	nodes: N → Payload[ND]          (one entry per node; last write wins)
//	edges: N → (N → ED)             (adjacency; edges[u][v] == edges[v][u])
//
// The container only stores and looks up. It carries no traversal, search,
// path or connectivity logic, and nothing can be removed once added.
//
// Core Methods:
//
//	NewGraph[N, ND, ED](opts ...GraphOption) *Graph  // O(1)
//
//	// Nodes
//	AddNode(id N, data ND)              // O(1): insert or overwrite payload
//	NodeData(id N) (ND, bool)           // O(1): false if unknown or placeholder
//	Node(id N) (Payload[ND], bool)      // O(1): payload + membership
//	HasNode(id N) bool                  // O(1)
//	Nodes() []N                         // O(V) snapshot, unordered
//	NodesData() []NodeEntry[N, ND]      // O(V) snapshot, unordered
//	NodeCount() int                     // O(1)
//
//	// Edges
//	AddEdge(u, v N, data ED)            // O(1): mirrored at (v,u); never fails
//	EdgeData(u, v N) (ED, bool)         // O(1)
//	HasEdge(u, v N) bool                // O(1)
//	Neighbors(id N) (map[N]ED, bool)    // O(deg) copy
//	Degree(id N) int                    // O(1)
//	Edges() []EdgeEntry[N, ED]          // O(V+E) snapshot, each pair once
//	EdgeCount() int                     // O(1)
//
//	// Copies
//	Clone() / CloneEmpty()              // O(V+E) / O(V)
//	InducedSubgraph(g, keep)            // O(V+E)
//
// Endpoint policy:
//
// AddEdge registers unknown endpoints as placeholder nodes: they become members
// of the graph (HasNode is true, they appear in Nodes) but carry an absent
// Payload, so NodeData reports false for them until AddNode supplies data.
// This keeps every identifier that appears in the adjacency map present in the
// node catalog.
//
// Re-adding a node overwrites its payload and leaves its edges in place.
// Re-adding an edge overwrites its payload; there are no parallel edges.
// Self-loops are stored as a single neighbor entry pointing back to the node.
//
// Concurrency:
//
// Graph performs no locking. A Graph must be used by one goroutine at a time;
// callers that share it must serialize access to the whole value themselves,
// since a write touches both maps.
package core
