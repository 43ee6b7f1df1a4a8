package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/gridgraph"
	"github.com/katalvlaran/spanviz/orchestrator"
)

func newGenerateCommand(a *app) *cobra.Command {
	var showEdges bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a graph and print its layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, regions, err := orchestrator.New(a.log).Layout(a.cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shape=%s size=%d nodes=%d edges=%d components=%d regions=%s weight=%.2f\n",
				g.Shape, g.Size, g.NodeCount(), g.EdgeCount(), g.Components(), formatRegions(regions), g.TotalWeight())
			drawLattice(out, g)
			if showEdges {
				for _, e := range g.Edges {
					marker := ""
					if e.IsBoundary {
						marker = " boundary"
					}
					fmt.Fprintf(out, "%s%s\n", e, marker)
				}
			}

			return nil
		},
	}
	addGraphFlags(cmd)
	cmd.Flags().BoolVar(&showEdges, "edges", false, "list every edge")

	return cmd
}

// formatRegions prints the orthogonal region count, plus the diagonal one
// when some regions only touch at corners.
func formatRegions(r gridgraph.Regions) string {
	if r.Diagonal == r.Orthogonal {
		return fmt.Sprint(r.Orthogonal)
	}

	return fmt.Sprintf("%d(%d diagonal)", r.Orthogonal, r.Diagonal)
}

// drawLattice prints one character per lattice cell: 'o' for a node, '.'
// for a cell the shape masked out.
func drawLattice(w io.Writer, g *core.Graph) {
	rows := make([][]byte, g.Size)
	for r := range rows {
		rows[r] = []byte(strings.Repeat(".", g.Size))
	}
	for _, n := range g.Nodes {
		if n.Row < g.Size && n.Col < g.Size {
			rows[n.Row][n.Col] = 'o'
		}
	}
	for _, row := range rows {
		fmt.Fprintln(w, string(row))
	}
}
