// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in store-and-lookup behavior for nodes and edges.
//   - Lock in the undirected mirroring rule and the overwrite rules.
//   - Lock in the endpoint policy: AddEdge creates placeholder nodes.

package core_test

import (
	"testing"

	"github.com/katalvlaran/ugraph/core"
	"github.com/stretchr/testify/require"
)

// TestGraph_Empty VERIFIES that NewGraph yields no nodes and no edges.
func TestGraph_Empty(t *testing.T) {
	g := newIntGraph()

	require.Zero(t, g.NodeCount())
	require.Zero(t, g.EdgeCount())
	require.Empty(t, g.Nodes())
	require.Empty(t, g.NodesData())
	require.Empty(t, g.Edges())
	require.False(t, g.HasNode(NodeA))
}

// TestGraph_AddNodeOverwrite VERIFIES last-write-wins on repeated AddNode.
func TestGraph_AddNodeOverwrite(t *testing.T) {
	g := newIntGraph()

	g.AddNode(NodeA, Data1)
	g.AddNode(NodeB, Data2)
	g.AddNode(NodeA, Data3)

	requireNodeData(t, g, NodeA, Data3)
	requireNodeData(t, g, NodeB, Data2)
	require.Equal(t, 2, g.NodeCount(), "re-adding A must not create a second node")
}

// TestGraph_AddNodeKeepsEdges VERIFIES that re-labeling a node leaves its edges intact.
func TestGraph_AddNodeKeepsEdges(t *testing.T) {
	g := newTriangle()

	g.AddNode(NodeA, Data20)

	requireNodeData(t, g, NodeA, Data20)
	requireEdge(t, g, NodeA, NodeB, Data10)
	requireEdge(t, g, NodeC, NodeA, Data5)
	require.Equal(t, 2, g.Degree(NodeA))
	require.Equal(t, 3, g.EdgeCount())
}

// TestGraph_NodeDataMissing VERIFIES that unknown identifiers report absent.
func TestGraph_NodeDataMissing(t *testing.T) {
	g := newIntGraph()
	g.AddNode(NodeA, Data1)
	g.AddNode(NodeB, Data2)

	requireNodeData(t, g, NodeA, Data1)
	requireNodeData(t, g, NodeB, Data2)

	got, ok := g.NodeData(NodeMissing)
	require.False(t, ok)
	require.Zero(t, got)

	p, member := g.Node(NodeMissing)
	require.False(t, member)
	require.False(t, p.Present())
}

// TestGraph_AddEdgeSymmetric VERIFIES the concrete A-B scenario and the mirror rule.
func TestGraph_AddEdgeSymmetric(t *testing.T) {
	g := newIntGraph()
	g.AddNode(NodeA, Data1)
	g.AddNode(NodeB, Data2)
	g.AddEdge(NodeA, NodeB, Data10)

	requireNodeData(t, g, NodeA, Data1)
	requireNodeData(t, g, NodeB, Data2)
	requireEdge(t, g, NodeA, NodeB, Data10)
	require.True(t, g.HasEdge(NodeB, NodeA))
	require.Equal(t, 1, g.EdgeCount())
}

// TestGraph_AddEdgeOverwrite VERIFIES that repeated AddEdge keeps one payload per pair.
func TestGraph_AddEdgeOverwrite(t *testing.T) {
	g := newIntGraph()
	g.AddNode(NodeA, Data1)
	g.AddNode(NodeA, Data2)
	g.AddNode(NodeC, Data3)

	g.AddEdge(NodeA, NodeB, Data1)
	g.AddEdge(NodeA, NodeB, Data2)
	g.AddEdge(NodeB, NodeC, Data3)

	requireEdge(t, g, NodeA, NodeB, Data2)
	requireEdge(t, g, NodeB, NodeC, Data3)
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, 1, g.Degree(NodeA))

	// Reversed orientation overwrites the same pair.
	g.AddEdge(NodeB, NodeA, Data5)
	requireEdge(t, g, NodeA, NodeB, Data5)
	require.Equal(t, 2, g.EdgeCount())
	require.Len(t, g.Edges(), 2)
}

// TestGraph_SelfLoop VERIFIES that a self-loop is one adjacency entry.
func TestGraph_SelfLoop(t *testing.T) {
	g := newIntGraph()
	g.AddNode(NodeA, Data1)

	g.AddEdge(NodeA, NodeA, Data5)

	nbrs, ok := g.Neighbors(NodeA)
	require.True(t, ok)
	require.Equal(t, map[string]int{NodeA: Data5}, nbrs)
	require.Equal(t, 1, g.Degree(NodeA))
	require.Equal(t, 1, g.EdgeCount())

	edges := g.Edges()
	require.Len(t, edges, 1)
	require.Equal(t, core.EdgeEntry[string, int]{U: NodeA, V: NodeA, Data: Data5}, edges[0])
}

// TestGraph_AddEdgePlaceholders VERIFIES the endpoint policy: unknown endpoints become
// members with an absent payload, and the edge is readable both ways.
func TestGraph_AddEdgePlaceholders(t *testing.T) {
	g := newIntGraph()

	g.AddEdge(NodeX, NodeY, Data5)

	for _, id := range []string{NodeX, NodeY} {
		require.True(t, g.HasNode(id), "HasNode(%s)", id)

		_, ok := g.NodeData(id)
		require.False(t, ok, "NodeData(%s) must be absent for a placeholder", id)

		p, member := g.Node(id)
		require.True(t, member)
		require.False(t, p.Present())
	}
	requireEdge(t, g, NodeX, NodeY, Data5)
	require.ElementsMatch(t, []string{NodeX, NodeY}, g.Nodes())

	// Supplying data later upgrades the placeholder without touching the edge.
	g.AddNode(NodeX, Data1)
	requireNodeData(t, g, NodeX, Data1)
	requireEdge(t, g, NodeX, NodeY, Data5)
	require.Equal(t, 2, g.NodeCount())
}

// TestGraph_AddEdgeKeepsExistingPayload VERIFIES that AddEdge never resets node data.
func TestGraph_AddEdgeKeepsExistingPayload(t *testing.T) {
	g := newIntGraph()
	g.AddNode(NodeA, Data1)

	g.AddEdge(NodeA, NodeB, Data10)

	requireNodeData(t, g, NodeA, Data1)
	_, ok := g.NodeData(NodeB)
	require.False(t, ok)
}

// TestGraph_Enumeration VERIFIES the concrete A/C scenario and the snapshot accessors.
func TestGraph_Enumeration(t *testing.T) {
	g := newIntGraph()
	g.AddNode(NodeA, Data1)
	g.AddNode(NodeA, Data2)
	g.AddNode(NodeC, Data3)

	requireNodeData(t, g, NodeA, Data2)
	requireNodeData(t, g, NodeC, Data3)
	require.Equal(t, []string{NodeA, NodeC}, sortedNodes(g))

	require.ElementsMatch(t, []core.NodeEntry[string, int]{
		{ID: NodeA, Data: core.Some(Data2)},
		{ID: NodeC, Data: core.Some(Data3)},
	}, g.NodesData())

	// Snapshots are independent of later writes.
	ids := g.Nodes()
	g.AddNode(NodeB, Data1)
	require.Len(t, ids, 2)
	require.Len(t, g.Nodes(), 3)
}

// TestGraph_NodesDataPlaceholder VERIFIES that placeholders enumerate with absent payload.
func TestGraph_NodesDataPlaceholder(t *testing.T) {
	g := newIntGraph()
	g.AddNode(NodeA, Data1)
	g.AddEdge(NodeA, NodeB, Data10)

	require.ElementsMatch(t, []core.NodeEntry[string, int]{
		{ID: NodeA, Data: core.Some(Data1)},
		{ID: NodeB, Data: core.None[int]()},
	}, g.NodesData())
}

// TestGraph_Neighbors VERIFIES adjacency snapshots and unknown-node handling.
func TestGraph_Neighbors(t *testing.T) {
	g := newTriangle()

	nbrs, ok := g.Neighbors(NodeB)
	require.True(t, ok)
	require.Equal(t, map[string]int{NodeA: Data10, NodeC: Data20}, nbrs)

	// Mutating the copy must not leak into the graph.
	nbrs[NodeX] = Data1
	require.False(t, g.HasEdge(NodeB, NodeX))

	nbrs, ok = g.Neighbors(NodeMissing)
	require.False(t, ok)
	require.Nil(t, nbrs)
	require.Zero(t, g.Degree(NodeMissing))

	// An isolated node has an empty, non-nil adjacency entry.
	g.AddNode(NodeX, Data1)
	nbrs, ok = g.Neighbors(NodeX)
	require.True(t, ok)
	require.NotNil(t, nbrs)
	require.Empty(t, nbrs)
}

// TestGraph_Edges VERIFIES that Edges lists each unordered pair once with its payload.
func TestGraph_Edges(t *testing.T) {
	g := newTriangle()

	edges := g.Edges()
	require.Len(t, edges, 3)
	require.Equal(t, g.EdgeCount(), len(edges))

	got := make(map[int][2]string, len(edges))
	for _, e := range edges {
		got[e.Data] = [2]string{e.U, e.V}
		requireEdge(t, g, e.U, e.V, e.Data)
	}
	require.Contains(t, got, Data10)
	require.Contains(t, got, Data20)
	require.Contains(t, got, Data5)
	ab := got[Data10]
	require.ElementsMatch(t, []string{NodeA, NodeB}, ab[:])
}

// TestGraph_MissingEdge VERIFIES EdgeData/HasEdge on absent pairs and unknown nodes.
func TestGraph_MissingEdge(t *testing.T) {
	g := newTriangle()
	g.AddNode(NodeX, Data1)

	_, ok := g.EdgeData(NodeA, NodeX)
	require.False(t, ok)
	require.False(t, g.HasEdge(NodeX, NodeA))

	_, ok = g.EdgeData(NodeMissing, NodeA)
	require.False(t, ok)
	require.False(t, g.HasNode(NodeMissing), "lookups must not create nodes")
}

// TestGraph_StructKeys VERIFIES that any comparable type works as identifier.
func TestGraph_StructKeys(t *testing.T) {
	type cell struct{ Row, Col int }

	g := core.NewGraph[cell, string, float64]()
	a, b := cell{0, 0}, cell{0, 1}
	g.AddNode(a, "origin")
	g.AddEdge(a, b, 1.5)

	got, ok := g.NodeData(cell{0, 0})
	require.True(t, ok)
	require.Equal(t, "origin", got)

	w, ok := g.EdgeData(cell{0, 1}, cell{0, 0})
	require.True(t, ok)
	require.InDelta(t, 1.5, w, 0)
}

// TestGraph_OptionalEdgePayload VERIFIES that callers can model absent edge data via Payload.
func TestGraph_OptionalEdgePayload(t *testing.T) {
	g := core.NewGraph[string, int, core.Payload[string]]()

	g.AddEdge(NodeA, NodeB, core.None[string]())
	g.AddEdge(NodeB, NodeC, core.Some("road"))

	p, ok := g.EdgeData(NodeB, NodeA)
	require.True(t, ok, "edge exists even without data")
	require.False(t, p.Present())

	p, ok = g.EdgeData(NodeC, NodeB)
	require.True(t, ok)
	require.Equal(t, "road", p.ValueOr(""))
}
