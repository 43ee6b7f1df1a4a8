// Package orchestrator glues the generator, the MST catalog and the
// per-run controllers together.
//
// One Orchestrator generates a graph from a config.Config and runs one or
// more catalog algorithms over it. The special name "both" runs prim and
// kruskal concurrently (one goroutine each, through errgroup), every run
// with its own controller, run state and disjoint set. Pause, Resume, Stop
// and SetSpeed fan out to every active run; Controller(name) reaches a
// single one.
//
// Observers are attached through WithSink factories, called once per run
// with the algorithm name, so per-run sinks (metrics, traces, recorders)
// never share state across runs unless the factory decides so.
package orchestrator
