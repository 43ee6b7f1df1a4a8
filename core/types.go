package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph validation.
var (
	// ErrNoNodes indicates the graph holds zero nodes.
	ErrNoNodes = errors.New("core: graph has no nodes")

	// ErrNodeIDNotDense indicates node ids are not the dense range 0..N-1.
	ErrNodeIDNotDense = errors.New("core: node ids must be dense 0..N-1")

	// ErrNodeNotFound indicates an edge endpoint does not exist.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be > 0")

	// ErrDuplicateEdge indicates a parallel edge between the same pair.
	ErrDuplicateEdge = errors.New("core: duplicate undirected edge")
)

// NodeID identifies a node. Ids are dense: 0..N-1 for a graph of N nodes.
type NodeID = int

// Node is one lattice cell included in the graph.
//
// Row and Col are the cell coordinates on the size×size lattice the graph
// was generated from; they are kept for rendering and for geometric
// orderings (see the yao catalog entry).
type Node struct {
	// ID is the dense identifier of this node.
	ID NodeID

	// Row is the lattice row (0 at the top).
	Row int

	// Col is the lattice column (0 at the left).
	Col int
}

// Edge is an undirected weighted connection between two nodes.
type Edge struct {
	// From is one endpoint.
	From NodeID

	// To is the other endpoint; From != To.
	To NodeID

	// Weight is the strictly positive cost of the edge.
	Weight float64

	// IsBoundary marks edges hugging the outline of a masked shape.
	// It is used for rendering only and never for algorithm logic.
	IsBoundary bool
}

// Key returns the canonical key of e.
func (e Edge) Key() EdgeKey { return KeyOf(e.From, e.To) }

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id NodeID) NodeID {
	if e.From == id {
		return e.To
	}

	return e.From
}

// String renders e as "from-to(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%.2f)", e.From, e.To, e.Weight)
}

// EdgeKey is the canonical identity of an undirected edge: the unordered
// endpoint pair normalised so that Lo <= Hi. It is comparable and is the
// key type for every edge set in this module.
type EdgeKey struct {
	Lo NodeID
	Hi NodeID
}

// KeyOf returns the canonical key for the pair (a, b).
func KeyOf(a, b NodeID) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{Lo: a, Hi: b}
}

// String renders k as "lo-hi".
func (k EdgeKey) String() string { return fmt.Sprintf("%d-%d", k.Lo, k.Hi) }

// NodeState classifies a node during a run.
type NodeState int

const (
	// Unvisited nodes have not been touched by the algorithm yet.
	Unvisited NodeState = iota

	// Frontier nodes are reachable through a candidate edge.
	Frontier

	// Member nodes are part of the growing tree (or forest).
	Member
)

var nodeStateNames = [...]string{
	Unvisited: "unvisited",
	Frontier:  "frontier",
	Member:    "member",
}

// String returns the lower-case name of s.
func (s NodeState) String() string {
	if s < 0 || int(s) >= len(nodeStateNames) {
		return fmt.Sprintf("NodeState(%d)", int(s))
	}

	return nodeStateNames[s]
}

// Graph is the generated node and edge set plus the shape it was masked to.
//
// Nodes are ordered by id. Edge order is whatever the generator produced
// (randomly permuted); algorithms never rely on it for correctness.
type Graph struct {
	// Nodes is indexed by NodeID.
	Nodes []Node

	// Edges holds every undirected edge once.
	Edges []Edge

	// Shape is the mask used during generation.
	Shape Shape

	// Size is the side length of the lattice the nodes were taken from.
	Size int
}
