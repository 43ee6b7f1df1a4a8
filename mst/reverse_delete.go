package mst

import (
	"sort"

	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/dsu"
)

// reverseDelete starts from the full edge set and scans edges by descending
// weight, removing each one whose endpoints stay connected without it.
//
// Steps:
//  1. Report the full set: stats (|E|, ΣW) first, then every touched node
//     becomes a Member.
//  2. Per step: tentatively drop the next edge and rebuild a dsu over the
//     surviving edges. If its endpoints are still joined the removal is
//     permanent (OnEdgeRejected); otherwise the edge is kept
//     (OnEdgeAccepted). Stats follow either way.
//
// Keeping an edge only when it is the last link between its endpoints
// preserves every component, so disconnected inputs end as a spanning
// forest.
// Complexity: O(E²·α(V)) time, O(V + E) memory.
func reverseDelete(r *run) error {
	n, m := r.g.NodeCount(), r.g.EdgeCount()
	seq := identity(m)
	sort.SliceStable(seq, func(a, b int) bool {
		return r.g.Edges[seq[a]].Weight > r.g.Edges[seq[b]].Weight
	})

	// 1. Start from everything.
	alive := make([]bool, m)
	count, weight := m, r.g.TotalWeight()
	r.sink.OnStatsChanged(count, weight)
	for i, e := range r.g.Edges {
		alive[i] = true
		r.mark(e.From, core.Member)
		r.mark(e.To, core.Member)
	}

	// The run's result is the surviving set in scan order, whether the
	// scan finishes or stops part-way.
	defer func() {
		r.edges, r.weight = r.edges[:0], 0
		for _, ei := range seq {
			if alive[ei] {
				r.edges = append(r.edges, r.g.Edges[ei])
				r.weight += r.g.Edges[ei].Weight
			}
		}
	}()

	set := dsu.New(n)
	for _, ei := range seq {
		if err := r.checkpoint(); err != nil {
			return err
		}

		// 2. Connectivity without ei.
		e := r.g.Edges[ei]
		alive[ei] = false
		set.Reset()
		for j, other := range r.g.Edges {
			if alive[j] {
				set.Union(other.From, other.To)
			}
		}

		if set.Connected(e.From, e.To) {
			count--
			weight -= e.Weight
			r.sink.OnEdgeRejected(e)
		} else {
			alive[ei] = true
			r.sink.OnEdgeAccepted(e)
		}
		r.sink.OnStatsChanged(count, weight)

		if err := r.yield(); err != nil {
			return err
		}
	}

	return nil
}
