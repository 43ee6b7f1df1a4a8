// Package spanviz runs minimum spanning tree algorithms as paced,
// observable, interruptible step sequences over generated lattice graphs.
//
// 🚀 What is in the box?
//
//   - Generator: random weighted graphs on a shaped size×size lattice
//     (grid, heart, diamond, triangle, hexagon, star, circle, pentagon)
//   - Engines: Prim, Fredman-Tarjan, Kruskal (five edge orders), Borůvka,
//     Reverse-Delete, behind a seventeen-name catalog with documented aliases
//   - Control: per-run pause, resume, stop, reset and live speed changes
//   - Observers: in-memory recorder, zap step log, Prometheus metrics,
//     OpenTelemetry spans
//
// Packages:
//
//	core/         Graph, Node, Edge, EdgeKey, NodeState, Shape
//	dsu/          disjoint-set forest (path compression, union by rank)
//	gridgraph/    shape masks over the lattice, BFS components
//	builder/      graph generation with functional options and seeded RNG
//	control/      run state machine and the paced scheduler
//	progress/     Sink interface and its implementations
//	mst/          engines, edge orders, catalog, Verify
//	config/       viper-backed configuration with validation
//	logging/      zap logger construction
//	orchestrator/ generate-and-run glue, concurrent "both" mode
//	cmd/spanviz   command-line entry point
//
// Quick start:
//
//	g, _ := builder.Generate(20, core.ShapeHeart, builder.WithSeed(7))
//	res, _ := mst.Run(ctx, "kruskal", g, progress.NewRecorder(), control.New())
//	fmt.Println(res.State, res.EdgesAdded, res.TotalWeight)
package spanviz
