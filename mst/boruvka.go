package mst

import (
	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/dsu"
)

// boruvkaWith returns the Borůvka engine. With dedup set, an edge picked by
// both of its components in one round is skipped by key before the dsu is
// consulted (the cheriton-tarjan entry); otherwise the second pick is
// discarded by the Union check.
//
// Steps per round:
//  1. One pass over all edges records, for every dsu root, its cheapest
//     edge to another component. Ties break on edge index so the picks of a
//     round never close a cycle.
//  2. Roots are visited in ascending order; each pick that still crosses
//     components is accepted as one step.
//  3. The run ends when a round picks nothing.
//
// Complexity: O(E·α(V)) per round, O(log V) rounds.
func boruvkaWith(dedup bool) engine {
	return func(r *run) error {
		n := r.g.NodeCount()
		set := dsu.New(n)
		cheapest := make([]int, n)

		lighter := func(a, b int) bool {
			wa, wb := r.g.Edges[a].Weight, r.g.Edges[b].Weight
			if wa != wb {
				return wa < wb
			}

			return a < b
		}

		r.stats()
		for set.Count() > 1 {
			// 1. Cheapest outgoing edge per component.
			for i := range cheapest {
				cheapest[i] = -1
			}
			found := false
			for ei, e := range r.g.Edges {
				ra, rb := set.Find(e.From), set.Find(e.To)
				if ra == rb {
					continue
				}
				for _, root := range [2]int{ra, rb} {
					if cheapest[root] < 0 || lighter(ei, cheapest[root]) {
						cheapest[root] = ei
					}
				}
				found = true
			}
			if !found {
				return nil
			}

			// 2. Merge along every pick.
			var taken map[core.EdgeKey]struct{}
			if dedup {
				taken = make(map[core.EdgeKey]struct{})
			}
			for _, ei := range cheapest {
				if ei < 0 {
					continue
				}
				e := r.g.Edges[ei]
				if dedup {
					if _, dup := taken[e.Key()]; dup {
						continue
					}
					taken[e.Key()] = struct{}{}
				}
				if set.Connected(e.From, e.To) {
					continue
				}

				if err := r.checkpoint(); err != nil {
					return err
				}
				set.Union(e.From, e.To)
				r.accept(e)
				if err := r.yield(); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
