package mst_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spanviz/builder"
	"github.com/katalvlaran/spanviz/control"
	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/mst"
	"github.com/katalvlaran/spanviz/progress"
)

// ExampleRun traces Kruskal over a four-node cycle.
func ExampleRun() {
	nodes := []core.Node{{ID: 0}, {ID: 1, Col: 1}, {ID: 2, Col: 2}, {ID: 3, Col: 3}}
	g, _ := builder.FromEdges(nodes, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 5},
		{From: 2, To: 3, Weight: 2},
		{From: 0, To: 3, Weight: 10},
	})

	sink := progress.Funcs{
		EdgeAccepted: func(e core.Edge) { fmt.Println("accept", e.Key()) },
		EdgeRejected: func(e core.Edge) { fmt.Println("reject", e.Key()) },
	}
	ctl := control.New(control.WithScheduler(control.ImmediateScheduler{}))

	res, err := mst.Run(context.Background(), "kruskal", g, sink, ctl)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.State, res.EdgesAdded, res.TotalWeight)
	// Output:
	// accept 0-1
	// accept 2-3
	// accept 1-2
	// reject 0-3
	// completed 3 8
}

// ExampleDescribe shows how aliases are reported.
func ExampleDescribe() {
	for _, name := range []string{"chazelle", "yao", "cheriton-tarjan"} {
		info, _ := mst.Describe(name)
		fmt.Printf("%s -> %s alias=%t approximate=%t\n", info.Name, info.Engine, info.Alias, info.Approximate)
	}
	// Output:
	// chazelle -> prim alias=true approximate=false
	// yao -> kruskal alias=false approximate=true
	// cheriton-tarjan -> boruvka alias=false approximate=false
}
