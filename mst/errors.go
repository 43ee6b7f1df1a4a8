package mst

import "errors"

// Sentinel errors returned by catalog lookups and runs.
var (
	// ErrNilGraph is returned when a run is started without a graph.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrUnknownAlgorithm is returned for names missing from the Catalog.
	ErrUnknownAlgorithm = errors.New("mst: unknown algorithm")

	// ErrCycle is returned by Verify when the edge set contains a cycle.
	ErrCycle = errors.New("mst: edge set contains a cycle")

	// ErrForeignEdge is returned by Verify for an edge missing from the graph.
	ErrForeignEdge = errors.New("mst: edge not in graph")
)
