// Package dsu implements a disjoint-set (union-find) forest over the dense
// integer domain 0..n-1, with full path compression and union by rank.
//
// It tracks the connected components built up incrementally by the
// cycle-avoiding MST engines and backs the connectivity checks of
// reverse-delete and core.Graph.Components.
//
// Ids outside the initialised domain are a programming error: every method
// panics on them instead of returning an error.
package dsu

import "fmt"

// DisjointSet is a union-find forest. The zero value is an empty set over
// an empty domain; use New.
//
// A DisjointSet is owned by exactly one run and is not safe for concurrent use.
type DisjointSet struct {
	parent []int // parent[x] == x for roots
	rank   []int // upper bound on tree height, meaningful for roots only
	count  int   // number of disjoint sets
}

// New returns a DisjointSet where every id in 0..n-1 is its own singleton
// root with rank 0.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		panic(fmt.Sprintf("dsu: New(%d): negative size", n))
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	d.Reset()

	return d
}

// Reset turns every id back into a singleton root with rank 0.
// Complexity: O(n).
func (d *DisjointSet) Reset() {
	for i := range d.parent {
		d.parent[i] = i
		d.rank[i] = 0
	}
	d.count = len(d.parent)
}

// MakeSet initialises each listed id as its own singleton root with rank 0.
// It is meant for setting up a fresh domain; ids that other ids still point
// at keep those children, so whole runs are reset with Reset instead.
// Complexity: O(n + len(ids)).
func (d *DisjointSet) MakeSet(ids []int) {
	for _, id := range ids {
		d.check(id)
		d.parent[id] = id
		d.rank[id] = 0
	}
	d.recount()
}

// Len returns the size of the id domain.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the current number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative of x's set.
//
// Every node on the walked path is re-pointed straight at the root, so a
// second Find on any of them is a single hop.
// Complexity: amortised O(α(n)).
func (d *DisjointSet) Find(x int) int {
	d.check(x)

	// 1. Walk to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// 2. Compress: rewrite every visited parent to the root.
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing a and b and reports whether a merge
// happened. It returns false ("already unioned") when both already share a
// representative.
//
// The lower-rank root is attached under the higher-rank root; on a tie
// b's root goes under a's root and a's root gains one rank.
// Complexity: amortised O(α(n)).
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}

	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.count--

	return true
}

// Connected reports whether a and b are in the same set.
// Complexity: amortised O(α(n)).
func (d *DisjointSet) Connected(a, b int) bool { return d.Find(a) == d.Find(b) }

// Groups returns the members of every set keyed by representative.
// Complexity: O(n·α(n)).
func (d *DisjointSet) Groups() map[int][]int {
	out := make(map[int][]int, d.count)
	for x := range d.parent {
		r := d.Find(x)
		out[r] = append(out[r], x)
	}

	return out
}

// check panics when x is outside the domain.
func (d *DisjointSet) check(x int) {
	if x < 0 || x >= len(d.parent) {
		panic(fmt.Sprintf("dsu: id %d outside domain [0,%d)", x, len(d.parent)))
	}
}

// recount recomputes the number of roots after MakeSet.
func (d *DisjointSet) recount() {
	n := 0
	for x, p := range d.parent {
		if x == p {
			n++
		}
	}
	d.count = n
}
