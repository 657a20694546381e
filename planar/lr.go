package planar

import (
	"sort"

	"github.com/katalvlaran/topcorr/core"
)

// none marks an absent edge reference.
const none = -1

// interval is a run of return edges [low, high] kept on one side.
type interval struct {
	low, high int
}

func emptyInterval() interval { return interval{low: none, high: none} }

func (iv interval) empty() bool { return iv.low == none && iv.high == none }

// conflictPair holds the return edges that must sit on opposite sides.
type conflictPair struct {
	left, right interval
}

func (p *conflictPair) swap() { p.left, p.right = p.right, p.left }

// lrState is the working memory of one LR test. Edge ids index from/to,
// which hold the orientation chosen by the first DFS.
type lrState struct {
	adj    [][]half
	from   []int
	to     []int
	height []int

	parentEdge []int
	lowpt      []int
	lowpt2     []int
	nesting    []int
	out        [][]int // oriented edges leaving each node, discovery order

	ref         []int
	lowptEdge   []int
	stackBottom []*conflictPair
	stack       []*conflictPair
}

// half is one side of an undirected edge in the adjacency list.
type half struct {
	to, id int
}

// IsPlanar reports whether the simple undirected graph on nodes 0..n-1 with
// the given edges is planar. Edges must be distinct pairs of distinct
// in-range nodes; orientation within a pair does not matter.
func IsPlanar(n int, edges [][2]int) bool {
	m := len(edges)
	if n >= 3 && m > 3*n-6 {
		return false
	}
	if m < nonPlanarFloor {
		return true
	}

	s := newState(n, edges)
	var roots []int
	for v := 0; v < n; v++ {
		if s.height[v] == none {
			s.height[v] = 0
			roots = append(roots, v)
			s.orient(v)
		}
	}

	for v := 0; v < n; v++ {
		ordered := s.out[v]
		sort.SliceStable(ordered, func(i, j int) bool {
			return s.nesting[ordered[i]] < s.nesting[ordered[j]]
		})
	}
	for _, r := range roots {
		if !s.test(r) {
			return false
		}
	}

	return true
}

// Check reports whether g is planar.
func Check(g *core.Graph) bool {
	es := g.Edges()
	pairs := make([][2]int, len(es))
	for i, e := range es {
		pairs[i] = [2]int{e.U, e.V}
	}

	return IsPlanar(g.Order(), pairs)
}

func newState(n int, edges [][2]int) *lrState {
	m := len(edges)
	s := &lrState{
		adj:         make([][]half, n),
		from:        make([]int, m),
		to:          make([]int, m),
		height:      make([]int, n),
		parentEdge:  make([]int, n),
		lowpt:       make([]int, m),
		lowpt2:      make([]int, m),
		nesting:     make([]int, m),
		out:         make([][]int, n),
		ref:         make([]int, m),
		lowptEdge:   make([]int, m),
		stackBottom: make([]*conflictPair, m),
	}
	for i, e := range edges {
		s.adj[e[0]] = append(s.adj[e[0]], half{to: e[1], id: i})
		s.adj[e[1]] = append(s.adj[e[1]], half{to: e[0], id: i})
		s.from[i] = none
		s.ref[i] = none
		s.lowptEdge[i] = none
	}
	for v := 0; v < n; v++ {
		s.height[v] = none
		s.parentEdge[v] = none
	}

	return s
}

// orient is the first DFS: it directs every edge away from the root along
// tree edges and towards an ancestor along back edges, and computes the two
// lowest return heights plus the nesting depth of each oriented edge.
func (s *lrState) orient(v int) {
	e := s.parentEdge[v]
	for _, h := range s.adj[v] {
		if s.from[h.id] != none {
			continue // already oriented from the other end
		}
		vw, w := h.id, h.to
		s.from[vw], s.to[vw] = v, w
		s.out[v] = append(s.out[v], vw)
		s.lowpt[vw] = s.height[v]
		s.lowpt2[vw] = s.height[v]

		if s.height[w] == none { // tree edge
			s.parentEdge[w] = vw
			s.height[w] = s.height[v] + 1
			s.orient(w)
		} else { // back edge
			s.lowpt[vw] = s.height[w]
		}

		s.nesting[vw] = 2 * s.lowpt[vw]
		if s.lowpt2[vw] < s.height[v] { // chordal
			s.nesting[vw]++
		}

		if e == none {
			continue
		}
		switch {
		case s.lowpt[vw] < s.lowpt[e]:
			s.lowpt2[e] = min(s.lowpt[e], s.lowpt2[vw])
			s.lowpt[e] = s.lowpt[vw]
		case s.lowpt[vw] > s.lowpt[e]:
			s.lowpt2[e] = min(s.lowpt2[e], s.lowpt[vw])
		default:
			s.lowpt2[e] = min(s.lowpt2[e], s.lowpt2[vw])
		}
	}
}

func (s *lrState) top() *conflictPair {
	if len(s.stack) == 0 {
		return nil
	}

	return s.stack[len(s.stack)-1]
}

func (s *lrState) pop() *conflictPair {
	p := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	return p
}

func (s *lrState) conflicting(iv interval, b int) bool {
	return !iv.empty() && s.lowpt[iv.high] > s.lowpt[b]
}

func (s *lrState) lowest(p *conflictPair) int {
	switch {
	case p.left.empty() && p.right.empty():
		return none
	case p.left.empty():
		return s.lowpt[p.right.low]
	case p.right.empty():
		return s.lowpt[p.left.low]
	}

	return min(s.lowpt[p.left.low], s.lowpt[p.right.low])
}

// test is the second DFS. It visits children in nesting order and returns
// false as soon as two return-edge intervals are forced onto the same side.
func (s *lrState) test(v int) bool {
	e := s.parentEdge[v]
	ordered := s.out[v]
	for i, ei := range ordered {
		w := s.to[ei]
		s.stackBottom[ei] = s.top()
		if ei == s.parentEdge[w] { // tree edge
			if !s.test(w) {
				return false
			}
		} else { // back edge
			s.lowptEdge[ei] = ei
			s.stack = append(s.stack, &conflictPair{
				left:  emptyInterval(),
				right: interval{low: ei, high: ei},
			})
		}

		if s.lowpt[ei] < s.height[v] { // ei has a return edge
			if i == 0 {
				s.lowptEdge[e] = s.lowptEdge[ei]
			} else if !s.addConstraints(ei, e) {
				return false
			}
		}
	}
	if e != none {
		s.removeBackEdges(e)
	}

	return true
}

func (s *lrState) addConstraints(ei, e int) bool {
	p := &conflictPair{left: emptyInterval(), right: emptyInterval()}

	// merge return edges of ei into p.right
	for len(s.stack) > 0 {
		q := s.pop()
		if !q.left.empty() {
			q.swap()
		}
		if !q.left.empty() {
			return false
		}
		if !q.right.empty() {
			if s.lowpt[q.right.low] > s.lowpt[e] {
				if p.right.empty() {
					p.right = q.right
				} else {
					s.ref[p.right.low] = q.right.high
				}
				p.right.low = q.right.low
			} else { // align
				s.ref[q.right.low] = s.lowptEdge[e]
			}
		}
		if s.top() == s.stackBottom[ei] {
			break
		}
	}

	// merge conflicting return edges of earlier siblings into p.left
	for {
		t := s.top()
		if t == nil || !(s.conflicting(t.left, ei) || s.conflicting(t.right, ei)) {
			break
		}
		q := s.pop()
		if s.conflicting(q.right, ei) {
			q.swap()
		}
		if s.conflicting(q.right, ei) {
			return false
		}
		if p.right.low != none {
			s.ref[p.right.low] = q.right.high
		}
		if q.right.low != none {
			p.right.low = q.right.low
		}
		if p.left.empty() {
			p.left = q.left
		} else {
			s.ref[p.left.low] = q.left.high
		}
		p.left.low = q.left.low
	}

	if !(p.left.empty() && p.right.empty()) {
		s.stack = append(s.stack, p)
	}

	return true
}

// removeBackEdges drops the return edges that end at the parent u of e.
func (s *lrState) removeBackEdges(e int) {
	u := s.from[e]

	for len(s.stack) > 0 && s.lowest(s.top()) == s.height[u] {
		s.pop()
	}

	if len(s.stack) > 0 {
		p := s.pop()
		// trim left interval
		for p.left.high != none && s.to[p.left.high] == u {
			p.left.high = s.ref[p.left.high]
		}
		if p.left.high == none && p.left.low != none {
			s.ref[p.left.low] = p.right.low
			p.left.low = none
		}
		// trim right interval
		for p.right.high != none && s.to[p.right.high] == u {
			p.right.high = s.ref[p.right.high]
		}
		if p.right.high == none && p.right.low != none {
			s.ref[p.right.low] = p.left.low
			p.right.low = none
		}
		s.stack = append(s.stack, p)
	}

	// the side of e follows its highest return edge
	if s.lowpt[e] < s.height[u] {
		if t := s.top(); t != nil {
			hl, hr := t.left.high, t.right.high
			if hl != none && (hr == none || s.lowpt[hl] > s.lowpt[hr]) {
				s.ref[e] = hl
			} else {
				s.ref[e] = hr
			}
		}
	}
}
