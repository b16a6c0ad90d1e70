// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, NodeEntry, EdgeEntry, GraphOption and the NewGraph constructor.
// Concurrency:
//   - None. The Graph performs no locking; the owner serializes access.
// AI-HINT (file):
//   - N is any comparable type; ND and ED are arbitrary payload types.
//   - Capacity options are size hints only; they never change behavior.

package core

// Graph is an undirected graph container with typed payloads on nodes and edges.
//
// nodes maps every known identifier to its payload; placeholders created by
// AddEdge hold an absent Payload. edges is the adjacency map: edges[u][v] is
// the payload of the edge {u, v} and always equals edges[v][u].
//
// Invariants:
//   - Every key of nodes has an entry in edges, and vice versa.
//   - Every neighbor key inside edges[u] is a key of nodes.
//   - edgeCount counts each unordered pair once (a self-loop counts once).
type Graph[N comparable, ND any, ED any] struct {
	nodes     map[N]Payload[ND] // identifier → payload (possibly absent)
	edges     map[N]map[N]ED    // identifier → neighbor → edge payload
	edgeCount int               // distinct unordered pairs

	adjCap int // size hint for fresh adjacency entries
}

// NodeEntry is a snapshot of one node: its identifier and its payload.
type NodeEntry[N comparable, ND any] struct {
	// ID is the node identifier.
	ID N

	// Data is the node payload; absent for placeholder endpoints.
	Data Payload[ND]
}

// EdgeEntry is a snapshot of one undirected edge {U, V} and its payload.
// The orientation of U and V carries no meaning.
type EdgeEntry[N comparable, ED any] struct {
	U, V N

	// Data is the edge payload, identical in both directions.
	Data ED
}

// graphConfig collects construction-time size hints.
type graphConfig struct {
	nodeCap int
	adjCap  int
}

// GraphOption configures a Graph before creation.
type GraphOption func(c *graphConfig)

// WithNodeCapacity pre-sizes the node and adjacency maps for n identifiers.
// Panics on n < 0.
func WithNodeCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithNodeCapacity(n<0)")
	}
	return func(c *graphConfig) { c.nodeCap = n }
}

// WithAdjacencyCapacity pre-sizes every new adjacency entry for d neighbors.
// Panics on d < 0.
func WithAdjacencyCapacity(d int) GraphOption {
	if d < 0 {
		panic("core: WithAdjacencyCapacity(d<0)")
	}
	return func(c *graphConfig) { c.adjCap = d }
}

// NewGraph creates an empty Graph. Options are applied left to right.
// Complexity: O(len(opts)) plus the requested pre-allocation.
func NewGraph[N comparable, ND any, ED any](opts ...GraphOption) *Graph[N, ND, ED] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, ND, ED]{
		nodes:  make(map[N]Payload[ND], cfg.nodeCap),
		edges:  make(map[N]map[N]ED, cfg.nodeCap),
		adjCap: cfg.adjCap,
	}
}
