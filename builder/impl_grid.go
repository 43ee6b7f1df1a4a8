// SPDX-License-Identifier: MIT
// Package: spanviz/builder
//
// impl_grid.go — back-fill policies applied after random edge placement.
//
// Canonical model:
//   • grid: every missing edge along the first row and the first column is
//     added, so every cell has a path to (0,0) through its row and column
//     whenever its own row/column edges survived.
//   • other shapes: the linear pass links consecutive node ids that are
//     lattice neighbours (i.e. horizontal runs) and not yet joined.
//
// Determinism:
//   • Stable order: first row left→right, then first column top→bottom.
//   • Weights come from cfg.weightFn(cfg.rng) in that order.

package builder

import "github.com/katalvlaran/spanviz/core"

// backfillGrid adds any missing first-row and first-column edge of a full
// size×size grid (ids are row*size+col).
// Complexity: O(size).
func backfillGrid(cfg builderConfig, size int, set *edgeSet) {
	// First row: (0,c) — (0,c+1).
	for col := 0; col+1 < size; col++ {
		if !set.has(col, col+1) {
			set.add(col, col+1, cfg.weightFn(cfg.rng))
		}
	}
	// First column: (r,0) — (r+1,0).
	for row := 0; row+1 < size; row++ {
		from, to := row*size, (row+1)*size
		if !set.has(from, to) {
			set.add(from, to, cfg.weightFn(cfg.rng))
		}
	}
}

// backfillLinear links each node to its predecessor in id order when the
// two are lattice-adjacent and not already joined by an edge.
// Complexity: O(V).
func backfillLinear(cfg builderConfig, nodes []core.Node, set *edgeSet) {
	for i := 1; i < len(nodes); i++ {
		prev, cur := nodes[i-1], nodes[i]
		if latticeAdjacent(prev, cur) && !set.has(prev.ID, cur.ID) {
			set.add(prev.ID, cur.ID, cfg.weightFn(cfg.rng))
		}
	}
}
