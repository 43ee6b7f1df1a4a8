package mst

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/spanviz/control"
	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/progress"
)

// Info describes one catalog entry.
type Info struct {
	// Name is the public catalog key.
	Name string

	// Engine is the canonical implementation the name dispatches to.
	Engine string

	// Order is the edge-order policy for Kruskal-style entries, empty otherwise.
	Order string

	// Alias marks names that run an engine unchanged under another name.
	Alias bool

	// Approximate marks entries that do not guarantee a minimum tree.
	Approximate bool

	// Verify marks entries whose result should be passed through Verify
	// after the run. The engine itself executes no extra logic.
	Verify bool

	// Summary is a one-line human description.
	Summary string
}

type entry struct {
	info Info
	run  engine
}

var entries = []entry{
	{Info{Name: "prim", Engine: EnginePrim, Summary: "grow one tree along the lightest frontier edge"}, prim},
	{Info{Name: "jarnik", Engine: EnginePrim, Alias: true, Summary: "Prim's algorithm under Jarník's name"}, prim},
	{Info{Name: "prim-dijkstra", Engine: EnginePrim, Alias: true, Summary: "Prim's algorithm under the Prim-Dijkstra name"}, prim},
	{Info{Name: "chazelle", Engine: EnginePrim, Alias: true, Summary: "runs Prim; no soft-heap implementation"}, prim},
	{Info{Name: "fredman-tarjan", Engine: EngineFredmanTarjan, Summary: "Prim with explicit key/parent relaxation"}, fredmanTarjan},
	{Info{Name: "kruskal", Engine: EngineKruskal, Order: OrderWeight, Summary: "global ascending weight order with union-find"}, kruskalWith(byWeight)},
	{Info{Name: "pettie-ramachandran", Engine: EngineKruskal, Order: OrderWeight, Alias: true, Summary: "runs Kruskal"}, kruskalWith(byWeight)},
	{Info{Name: "tarjan-verification", Engine: EngineKruskal, Order: OrderWeight, Alias: true, Verify: true, Summary: "runs Kruskal; result checked with Verify afterwards"}, kruskalWith(byWeight)},
	{Info{Name: "planar-graph", Engine: EngineKruskal, Order: OrderWeight, Alias: true, Summary: "runs Kruskal over the planar lattice"}, kruskalWith(byWeight)},
	{Info{Name: "integer-weight", Engine: EngineKruskal, Order: OrderIntegerBucket, Summary: "Kruskal with bucket sort on floored weights"}, kruskalWith(byIntegerBucket)},
	{Info{Name: "kkt", Engine: EngineKruskal, Order: OrderShuffleWeight, Summary: "random permutation, then stable weight order"}, kruskalWith(shuffledByWeight)},
	{Info{Name: "gabow-galil-spencer-tarjan", Engine: EngineKruskal, Order: OrderEndpointSum, Summary: "weight order, ties by endpoint id sum"}, kruskalWith(byWeightEndpointSum)},
	{Info{Name: "yao", Engine: EngineKruskal, Order: OrderAngular, Approximate: true, Summary: "angular sectors around the centroid, then weight; spanning but not always minimum"}, kruskalWith(byAngle)},
	{Info{Name: "boruvka", Engine: EngineBoruvka, Summary: "merge every component along its cheapest edge per round"}, boruvkaWith(false)},
	{Info{Name: "parallel-boruvka", Engine: EngineBoruvka, Alias: true, Summary: "runs Borůvka sequentially"}, boruvkaWith(false)},
	{Info{Name: "cheriton-tarjan", Engine: EngineBoruvka, Summary: "Borůvka with same-round duplicate suppression"}, boruvkaWith(true)},
	{Info{Name: "reverse-delete", Engine: EngineReverseDelete, Summary: "drop heaviest edges while connectivity holds"}, reverseDelete},
}

// Catalog maps every public algorithm name to its runnable Algorithm.
var Catalog = func() map[string]Algorithm {
	out := make(map[string]Algorithm, len(entries))
	for _, e := range entries {
		out[e.info.Name] = bind(e)
	}

	return out
}()

var infos = func() map[string]Info {
	out := make(map[string]Info, len(entries))
	for _, e := range entries {
		out[e.info.Name] = e.info
	}

	return out
}()

func bind(e entry) Algorithm {
	return func(ctx context.Context, g *core.Graph, sink progress.Sink, ctl *control.Controller) (Result, error) {
		return execute(ctx, e.info, e.run, g, sink, ctl)
	}
}

// normalize folds case and surrounding space so "Prim " finds "prim".
func normalize(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// Lookup returns the Algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	algo, ok := Catalog[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("Lookup %q: %w", name, ErrUnknownAlgorithm)
	}

	return algo, nil
}

// Describe returns the catalog metadata for name.
func Describe(name string) (Info, error) {
	info, ok := infos[normalize(name)]
	if !ok {
		return Info{}, fmt.Errorf("Describe %q: %w", name, ErrUnknownAlgorithm)
	}

	return info, nil
}

// Names returns every catalog key in ascending order.
func Names() []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info.Name)
	}
	sort.Strings(out)

	return out
}

// Run looks name up and executes it in one call.
func Run(ctx context.Context, name string, g *core.Graph, sink progress.Sink, ctl *control.Controller) (Result, error) {
	algo, err := Lookup(name)
	if err != nil {
		return Result{}, err
	}

	return algo(ctx, g, sink, ctl)
}
