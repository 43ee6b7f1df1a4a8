package mst

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/spanviz/core"
)

// order returns the indices of g.Edges in the sequence a Kruskal-style
// engine scans them.
type order func(g *core.Graph) []int

// Order policy names reported by Info.Order.
const (
	OrderWeight        = "weight"
	OrderIntegerBucket = "integer-bucket"
	OrderShuffleWeight = "shuffle-weight"
	OrderEndpointSum   = "weight-endpoint-sum"
	OrderAngular       = "angular-weight"
)

// yaoSector is the angular bucket width in radians; edges whose midpoints
// fall in the same sector around the centroid are ordered by weight.
const yaoSector = 0.1

// maxBucketSpan bounds the counting array of byIntegerBucket; wider weight
// ranges fall back to a comparison sort.
const maxBucketSpan = 1 << 16

// maxBucketWeight bounds the weights whose floor converts to int exactly;
// larger or non-finite weights fall back to a comparison sort.
const maxBucketWeight = 1 << 53

func identity(m int) []int {
	idx := make([]int, m)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// byWeight is a stable ascending sort on weight; ties keep edge order.
func byWeight(g *core.Graph) []int {
	idx := identity(g.EdgeCount())
	sortByWeight(g, idx)

	return idx
}

func sortByWeight(g *core.Graph, idx []int) {
	sort.SliceStable(idx, func(a, b int) bool {
		return g.Edges[idx[a]].Weight < g.Edges[idx[b]].Weight
	})
}

// byIntegerBucket distributes edges into buckets keyed by floor(weight)
// and emits buckets in ascending key order, each sorted by weight so the
// scan stays an exact ascending order for fractional weights.
// Complexity: O(E + span) plus the per-bucket sorts.
func byIntegerBucket(g *core.Graph) []int {
	m := g.EdgeCount()
	if m == 0 {
		return nil
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, e := range g.Edges {
		if !(e.Weight < maxBucketWeight) {
			return byWeight(g)
		}
		f := math.Floor(e.Weight)
		lo, hi = math.Min(lo, f), math.Max(hi, f)
	}
	if hi-lo >= maxBucketSpan {
		return byWeight(g)
	}

	buckets := make([][]int, int(hi-lo)+1)
	for i, e := range g.Edges {
		f := int(math.Floor(e.Weight) - lo)
		buckets[f] = append(buckets[f], i)
	}
	out := make([]int, 0, m)
	for _, b := range buckets {
		sortByWeight(g, b)
		out = append(out, b...)
	}

	return out
}

// shuffledByWeight permutes the edges with a per-run time-seeded source,
// then stable-sorts by weight. The tree weight is unaffected; only tie
// order varies between runs.
func shuffledByWeight(g *core.Graph) []int {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	idx := identity(g.EdgeCount())
	rng.Shuffle(len(idx), func(a, b int) { idx[a], idx[b] = idx[b], idx[a] })
	sortByWeight(g, idx)

	return idx
}

// byWeightEndpointSum sorts ascending by weight; equal weights are ordered
// by From+To.
func byWeightEndpointSum(g *core.Graph) []int {
	idx := identity(g.EdgeCount())
	sort.SliceStable(idx, func(a, b int) bool {
		ea, eb := g.Edges[idx[a]], g.Edges[idx[b]]
		if ea.Weight != eb.Weight {
			return ea.Weight < eb.Weight
		}

		return ea.From+ea.To < eb.From+eb.To
	})

	return idx
}

// byAngle sorts by the angular sector of each edge's midpoint around the
// node centroid, then by weight. The result is a spanning tree but not
// necessarily a minimum one.
func byAngle(g *core.Graph) []int {
	cx, cy := g.Centroid()
	sector := make([]int, g.EdgeCount())
	for i, e := range g.Edges {
		a, b := g.Nodes[e.From], g.Nodes[e.To]
		mx := float64(a.Col+b.Col)/2 - cx
		my := float64(a.Row+b.Row)/2 - cy
		sector[i] = int(math.Floor((math.Atan2(my, mx) + math.Pi) / yaoSector))
	}

	idx := identity(g.EdgeCount())
	sort.SliceStable(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if sector[ia] != sector[ib] {
			return sector[ia] < sector[ib]
		}

		return g.Edges[ia].Weight < g.Edges[ib].Weight
	})

	return idx
}
