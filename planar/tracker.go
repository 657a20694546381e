package planar

import (
	"fmt"

	"github.com/katalvlaran/topcorr/dsu"
)

// Tracker maintains a planar simple graph on n nodes that grows one edge at
// a time. The zero value is not usable; call NewTracker.
type Tracker struct {
	n      int
	edges  [][2]int
	seen   map[[2]int]struct{}
	forest *dsu.Forest

	// last is the most recent pair CanAdd approved; Commit on the same pair
	// skips the re-test. Reset by every Commit.
	last    [2]int
	hasLast bool

	tests int
}

// NewTracker returns an empty tracker on nodes 0..n-1.
func NewTracker(n int) *Tracker {
	if n < 0 {
		n = 0
	}

	return &Tracker{
		n:      n,
		edges:  make([][2]int, 0, MaxEdges(n)),
		seen:   make(map[[2]int]struct{}, MaxEdges(n)),
		forest: dsu.New(n),
	}
}

func key(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// CanAdd reports whether the current graph plus (u,v) is planar. It never
// modifies the graph. Invalid or duplicate edges report false.
//
// Steps:
//  1. Reject bad endpoints, self-loops, existing edges, and a full graph (3n−6).
//  2. Accept at once when u and v lie in different components.
//  3. Otherwise run the LR test on the current edges plus (u,v).
func (t *Tracker) CanAdd(u, v int) bool {
	if t.validate(u, v) != nil {
		return false
	}
	if t.Full() {
		return false
	}

	ok := !t.forest.Connected(u, v)
	if !ok {
		t.tests++
		// spare capacity is reused; len(t.edges) is unchanged
		candidate := append(t.edges, key(u, v))
		ok = IsPlanar(t.n, candidate)
	}
	if ok {
		t.last, t.hasLast = key(u, v), true
	}

	return ok
}

// Commit permanently adds (u,v). When (u,v) is the pair CanAdd approved
// last, no test is repeated; otherwise Commit tests first and returns
// ErrNonPlanar on failure, leaving the graph unchanged.
func (t *Tracker) Commit(u, v int) error {
	if err := t.validate(u, v); err != nil {
		return err
	}
	k := key(u, v)
	if !t.hasLast || t.last != k {
		if !t.CanAdd(u, v) {
			return fmt.Errorf("Commit(%d,%d): %w", u, v, ErrNonPlanar)
		}
	}

	t.edges = append(t.edges, k)
	t.seen[k] = struct{}{}
	t.forest.Union(u, v)
	t.hasLast = false

	return nil
}

func (t *Tracker) validate(u, v int) error {
	if u < 0 || u >= t.n || v < 0 || v >= t.n {
		return fmt.Errorf("(%d,%d) outside [0,%d): %w", u, v, t.n, ErrBadEdge)
	}
	if u == v {
		return fmt.Errorf("self-loop at %d: %w", u, ErrBadEdge)
	}
	if _, dup := t.seen[key(u, v)]; dup {
		return fmt.Errorf("(%d,%d) already present: %w", u, v, ErrBadEdge)
	}

	return nil
}

// Order returns the number of nodes.
func (t *Tracker) Order() int { return t.n }

// EdgeCount returns the number of committed edges.
func (t *Tracker) EdgeCount() int { return len(t.edges) }

// Full reports whether the graph has reached MaxEdges and is therefore
// maximal planar.
func (t *Tracker) Full() bool { return len(t.edges) >= MaxEdges(t.n) }

// Tests returns how many candidates needed IsPlanar (same component), for diagnostics.
func (t *Tracker) Tests() int { return t.tests }
