package mst

import (
	"math"

	"github.com/katalvlaran/spanviz/core"
)

// prim grows a tree from node 0 by repeatedly taking the lightest frontier
// edge that crosses from the visited set to an unvisited node.
//
// Steps:
//  1. Visit the start node and push its incident edges onto the frontier.
//  2. Per step: scan the frontier linearly, dropping edges whose endpoints
//     are both visited, and pick the lightest crossing edge (first wins on
//     ties). Accept it, visit its new endpoint and push that endpoint's
//     edges into unvisited nodes.
//  3. When no crossing edge remains but unvisited nodes do, restart from
//     the lowest unvisited id so disconnected inputs yield a forest.
//
// Complexity: O(V·E) time, O(E) memory.
func prim(r *run) error {
	n := r.g.NodeCount()
	inc := r.g.Incidence()
	visited := make([]bool, n)
	queued := make([]bool, r.g.EdgeCount())
	frontier := make([]int, 0, len(inc[0])*2)
	seen := 0

	visit := func(id core.NodeID) {
		visited[id] = true
		seen++
		r.mark(id, core.Member)
		for _, ei := range inc[id] {
			other := r.g.Edges[ei].Other(id)
			if visited[other] || queued[ei] {
				continue
			}
			queued[ei] = true
			frontier = append(frontier, ei)
			r.mark(other, core.Frontier)
		}
	}

	// 1. Start at the first node.
	r.stats()
	visit(0)
	next := 1

	for seen < n {
		if err := r.checkpoint(); err != nil {
			return err
		}

		// 2. Linear scan for the lightest crossing edge.
		best, bestAt := -1, -1
		kept := frontier[:0]
		for _, ei := range frontier {
			e := r.g.Edges[ei]
			if visited[e.From] && visited[e.To] {
				continue
			}
			if best < 0 || e.Weight < r.g.Edges[best].Weight {
				best, bestAt = ei, len(kept)
			}
			kept = append(kept, ei)
		}
		frontier = kept

		if best < 0 {
			// 3. Frontier exhausted: restart in the next component.
			for visited[next] {
				next++
			}
			visit(next)
		} else {
			frontier = append(frontier[:bestAt], frontier[bestAt+1:]...)
			e := r.g.Edges[best]
			newID := e.To
			if visited[e.To] {
				newID = e.From
			}
			r.accept(e)
			visit(newID)
		}

		if err := r.yield(); err != nil {
			return err
		}
	}

	return nil
}

// fredmanTarjan is Prim driven by per-node keys: key[v] is the lightest
// known edge from the tree to v and via[v] is that edge.
//
// Each step extracts the unvisited node with the smallest finite key (lowest
// id on ties), accepts its via edge and relaxes its neighbours. A node with
// no finite key starts a new component of the forest without an edge.
// Complexity: O(V² + E) time, O(V) memory.
func fredmanTarjan(r *run) error {
	n := r.g.NodeCount()
	inc := r.g.Incidence()
	key := make([]float64, n)
	via := make([]int, n)
	visited := make([]bool, n)
	for i := range key {
		key[i] = math.Inf(1)
		via[i] = -1
	}

	r.stats()
	for added := 0; added < n; added++ {
		if err := r.checkpoint(); err != nil {
			return err
		}

		// 1. Extract the minimum key; fall back to the lowest unvisited id.
		u := -1
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if u < 0 || key[v] < key[u] {
				u = v
			}
		}
		visited[u] = true
		if via[u] >= 0 {
			r.accept(r.g.Edges[via[u]])
		} else {
			r.mark(u, core.Member)
		}

		// 2. Relax every edge into an unvisited neighbour.
		for _, ei := range inc[u] {
			e := r.g.Edges[ei]
			v := e.Other(u)
			if visited[v] || e.Weight >= key[v] {
				continue
			}
			key[v], via[v] = e.Weight, ei
			r.mark(v, core.Frontier)
		}

		if err := r.yield(); err != nil {
			return err
		}
	}

	return nil
}
