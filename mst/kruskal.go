package mst

import "github.com/katalvlaran/spanviz/dsu"

// kruskalWith returns the Kruskal engine scanning edges in the order
// produced by ord.
//
// Steps:
//  1. Compute the scan order once.
//  2. Per step: take the next edge; accept it iff its endpoints are in
//     different dsu sets (union them), otherwise reject it as cycle-forming.
//  3. Once |V|-1 edges are accepted the tree is complete: every unscanned
//     edge is reported rejected without further steps.
//
// Complexity: O(order + E·α(V)) time, O(V + E) memory.
func kruskalWith(ord order) engine {
	return func(r *run) error {
		n := r.g.NodeCount()
		set := dsu.New(n)
		seq := ord(r.g)

		r.stats()
		for i, ei := range seq {
			if err := r.checkpoint(); err != nil {
				return err
			}

			e := r.g.Edges[ei]
			if set.Union(e.From, e.To) {
				r.accept(e)
			} else {
				r.reject(e)
			}

			if len(r.edges) == n-1 {
				for _, rest := range seq[i+1:] {
					r.reject(r.g.Edges[rest])
				}

				return nil
			}
			if err := r.yield(); err != nil {
				return err
			}
		}

		return nil
	}
}
