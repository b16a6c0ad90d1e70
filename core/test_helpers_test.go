// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for ugraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Keep payload types concrete (string IDs, int payloads) so failures read well.

package core_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/ugraph/core"
	"github.com/stretchr/testify/require"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeX = "X"
	NodeY = "Y"

	NodeMissing = "no_node"
)

// Common payloads used across core tests (avoid magic numbers in test bodies).
const (
	Data1  = 1
	Data2  = 2
	Data3  = 3
	Data5  = 5
	Data10 = 10
	Data20 = 20
)

// intGraph is the graph shape used by most tests.
type intGraph = core.Graph[string, int, int]

// newIntGraph returns an empty string-keyed graph with int payloads.
func newIntGraph() *intGraph {
	return core.NewGraph[string, int, int]()
}

// newTriangle returns A-B-C with node payloads 1,2,3 and edges A-B=10, B-C=20, C-A=5.
func newTriangle() *intGraph {
	g := newIntGraph()
	g.AddNode(NodeA, Data1)
	g.AddNode(NodeB, Data2)
	g.AddNode(NodeC, Data3)
	g.AddEdge(NodeA, NodeB, Data10)
	g.AddEdge(NodeB, NodeC, Data20)
	g.AddEdge(NodeC, NodeA, Data5)

	return g
}

// sortedNodes returns Nodes() sorted for stable comparison.
func sortedNodes(g *intGraph) []string {
	ids := g.Nodes()
	sort.Strings(ids)

	return ids
}

// requireEdge asserts that {u,v} carries want in both directions.
func requireEdge(t *testing.T, g *intGraph, u, v string, want int) {
	t.Helper()

	got, ok := g.EdgeData(u, v)
	require.True(t, ok, "edge %s-%s missing", u, v)
	require.Equal(t, want, got, "edge %s-%s payload", u, v)

	got, ok = g.EdgeData(v, u)
	require.True(t, ok, "mirror %s-%s missing", v, u)
	require.Equal(t, want, got, "mirror %s-%s payload", v, u)
}

// requireNodeData asserts that id is a regular node carrying want.
func requireNodeData(t *testing.T, g *intGraph, id string, want int) {
	t.Helper()

	got, ok := g.NodeData(id)
	require.True(t, ok, "NodeData(%s) absent", id)
	require.Equal(t, want, got, "NodeData(%s)", id)
}
