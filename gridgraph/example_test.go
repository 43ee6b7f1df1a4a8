package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/gridgraph"
)

// ExampleNewMask prints a 5×5 diamond mask.
func ExampleNewMask() {
	m, err := gridgraph.NewMask(5, core.ShapeDiamond, gridgraph.DefaultMaskOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for row := 0; row < m.Size; row++ {
		for col := 0; col < m.Size; col++ {
			if m.Inside(row, col) {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
	fmt.Println("cells:", m.Count())
	// Output:
	// ..#..
	// .###.
	// #####
	// .###.
	// ..#..
	// cells: 13
}
