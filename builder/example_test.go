package builder_test

import (
	"fmt"

	"github.com/katalvlaran/ugraph/builder"
	"github.com/katalvlaran/ugraph/core"
)

// ExampleApply builds a labeled wheel and inspects the hub.
func ExampleApply() {
	topo, err := builder.Wheel(5)
	if err != nil {
		fmt.Println(err)
		return
	}

	g := core.NewGraph[string, string, int]()
	err = builder.Apply(g, topo, builder.SymbolIDFn,
		func(i int) string { return fmt.Sprintf("station-%d", i) },
		func(u, v int) int { return u*10 + v })
	if err != nil {
		fmt.Println(err)
		return
	}

	hub, _ := g.NodeData("A")
	spoke, _ := g.EdgeData("C", "A")
	fmt.Println(g.NodeCount(), g.EdgeCount(), g.Degree("A"), hub, spoke)

	// Output:
	// 5 8 4 station-0 2
}

// ExampleCompleteBipartite shows partition labels on K_{2,2}.
func ExampleCompleteBipartite() {
	topo, _ := builder.CompleteBipartite(2, 2)

	g := core.NewGraph[string, int, bool]()
	_ = builder.Apply(g, topo, builder.PartitionIDFn(2, "L", "R"), nil, builder.ConstEdge(true))

	fmt.Println(g.HasEdge("R1", "L0"), g.HasEdge("L0", "L1"), g.EdgeCount())

	// Output:
	// true false 4
}
