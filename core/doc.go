// Package core provides the read-only graph model animated by spanviz.
//
// A Graph G = (V, E) is a set of lattice nodes with dense ids and a set of
// undirected, strictly positive weighted edges:
//
//   - Node ids are dense (0..N-1) and assigned in row-major lattice order.
//   - Each undirected pair appears at most once; EdgeKey is its canonical
//     identity (Lo <= Hi) and is used as the map/set key everywhere.
//   - IsBoundary is a rendering hint computed by the generator.
//
// Why a plain struct instead of a locked graph?
//
//   - One generation feeds one or more runs and is then discarded.
//   - Runs never mutate the input; they own their own state.
//   - Concurrent readers therefore need no synchronisation.
//
// Core Methods:
//
//	Validate() error            // O(V+E): dense ids, endpoints, weights, duplicates
//	Incidence() [][]int         // O(V+E): node → incident edge indices
//	EdgeIndex() map[EdgeKey]int // O(E)
//	Components() int            // O(V+E·α): number of connected components
//	IsConnected() bool
//	Centroid() (x, y float64)   // mean lattice position
//	TotalWeight() float64
//
// Node classification during a run uses NodeState (Unvisited, Frontier,
// Member). Shapes are enumerated by Shape and parsed with ParseShape.
package core
