package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spanviz/mst"
)

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tENGINE\tORDER\tNOTES\tSUMMARY")
			for _, name := range mst.Names() {
				info, err := mst.Describe(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", info.Name, info.Engine, dash(info.Order), notes(info), info.Summary)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", mst.Both, "prim+kruskal", "-", "concurrent", "run prim and kruskal side by side")

			return w.Flush()
		},
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

func notes(info mst.Info) string {
	switch {
	case info.Approximate:
		return "approximate"
	case info.Verify:
		return "alias, verified"
	case info.Alias:
		return "alias"
	default:
		return "-"
	}
}
