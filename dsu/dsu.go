// Package dsu implements a disjoint-set forest (union-find) over the dense
// integer node range [0, n), with path halving and union by rank.
//
// It backs Kruskal's cycle rejection in prim_kruskal and the component
// fast path of planar.Tracker: joining two components by a single edge can
// never break planarity, so such candidates skip the full planarity test.
//
// Complexity: Find and Union run in O(α(n)) amortized; memory is O(n).
package dsu

// Forest is a transient union-find structure; it is not safe for concurrent mutation.
type Forest struct {
	parent     []int
	rank       []int
	components int
}

// New returns a forest of n singleton sets.
func New(n int) *Forest {
	f := &Forest{
		parent:     make([]int, n),
		rank:       make([]int, n),
		components: n,
	}
	for i := range f.parent {
		f.parent[i] = i
	}

	return f
}

// Find returns the representative of x.
func (f *Forest) Find(x int) int {
	for f.parent[x] != x {
		// path halving: point x at its grandparent
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}

	return x
}

// Union merges the sets of x and y and reports whether they were distinct.
func (f *Forest) Union(x, y int) bool {
	rx, ry := f.Find(x), f.Find(y)
	if rx == ry {
		return false
	}
	// attach the shallower tree under the deeper one
	switch {
	case f.rank[rx] < f.rank[ry]:
		f.parent[rx] = ry
	case f.rank[rx] > f.rank[ry]:
		f.parent[ry] = rx
	default:
		f.parent[ry] = rx
		f.rank[rx]++
	}
	f.components--

	return true
}

// Connected reports whether x and y share a set.
func (f *Forest) Connected(x, y int) bool { return f.Find(x) == f.Find(y) }

// Components returns the current number of disjoint sets.
func (f *Forest) Components() int { return f.components }

