// Package mst runs minimum spanning tree algorithms as paced, observable,
// interruptible step sequences over a read-only core.Graph.
//
// Every run follows the same step protocol:
//
//  1. Checkpoint: return the partial result once stopped; block while paused.
//  2. One unit of work (an edge considered or two components merged) and
//     the matching progress.Sink notifications.
//  3. Yield to the controller's scheduler for the paced step delay.
//
// Engines:
//
//	prim            frontier of crossing edges, linear minimum scan per step
//	fredman-tarjan  Prim with explicit key/parent relaxation per node
//	kruskal         global edge order + dsu cycle test, with pluggable orders
//	boruvka         cheapest edge per component per round
//	reverse-delete  descending removal while connectivity is preserved
//
// The Catalog maps seventeen public algorithm names onto those engines.
// Several names are documented aliases (chazelle runs Prim, parallel-boruvka
// runs Borůvka sequentially) and yao uses an angular edge order that does
// not guarantee a minimum tree; Describe reports which is which.
//
// Disconnected inputs never fail: every engine returns a spanning forest
// with EdgesAdded < |V|-1 and reaches the completed state.
//
// Complexity (V nodes, E edges):
//
//	prim, fredman-tarjan  O(V·E) with the linear scans used here
//	kruskal family        O(E log E + E·α(V))
//	boruvka               O(E·log V·α(V))
//	reverse-delete        O(E²·α(V))
package mst
