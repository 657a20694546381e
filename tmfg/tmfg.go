package tmfg

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/topcorr/core"
	"github.com/katalvlaran/topcorr/corr"
	"github.com/katalvlaran/topcorr/logging"
)

// Build returns the TMFG of src as a frozen graph with exactly 3n−6 edges.
func Build(src corr.Source, opts ...Option) (*core.Graph, error) {
	res, err := Construct(src, opts...)
	if err != nil {
		return nil, err
	}

	return res.Graph, nil
}

// faceState is an open face and its cached best outside node.
type faceState struct {
	face  Face
	alive bool
	node  int // -1 when no outside node remains
	gain  float64
}

// grower holds the mutable state of one construction.
type grower struct {
	n      int
	w      func(i, j int) float64
	placed []bool
	faces  []faceState
}

// Construct runs the TMFG construction and returns the graph together
// with its seed, insertion order and final faces.
//
// Errors: corr.ErrInvalidMatrix (with its cause, including
// corr.ErrInsufficientNodes for n < 4) and ErrInvalidOption.
func Construct(src corr.Source, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.SeedCandidates < MinNodes {
		return nil, fmt.Errorf("tmfg.Construct: %w: seed candidates %d < %d", ErrInvalidOption, o.SeedCandidates, MinNodes)
	}

	m, err := corr.Validate(src, MinNodes)
	if err != nil {
		return nil, fmt.Errorf("tmfg.Construct: %w", err)
	}
	labels, err := corr.ResolveLabels(m, o.Labels)
	if err != nil {
		return nil, fmt.Errorf("tmfg.Construct: %w", err)
	}
	n := m.Size()

	weight := m.At
	if o.Absolute {
		weight = func(i, j int) float64 { return math.Abs(m.At(i, j)) }
	}

	seed, seedScore := chooseSeed(n, weight, o.SeedCandidates)

	g, err := core.NewGraph(n, labels)
	if err != nil {
		return nil, fmt.Errorf("tmfg.Construct: %w", err)
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if err = g.AddEdge(seed[i], seed[j], m.At(seed[i], seed[j])); err != nil {
				return nil, fmt.Errorf("tmfg.Construct: %w", err)
			}
		}
	}

	gr := &grower{
		n:      n,
		w:      weight,
		placed: make([]bool, n),
		faces:  make([]faceState, 0, 2*n-4),
	}
	for _, v := range seed {
		gr.placed[v] = true
	}
	a, b, c, d := seed[0], seed[1], seed[2], seed[3]
	for _, f := range []Face{{a, b, c}, {a, b, d}, {a, c, d}, {b, c, d}} {
		gr.addFace(f)
	}

	order := make([]Insertion, 0, n-4)
	for step := 0; step < n-4; step++ {
		k := gr.pick()
		fs := gr.faces[k]
		v, f := fs.node, fs.face
		order = append(order, Insertion{Node: v, Face: f, Gain: fs.gain})

		for _, corner := range f {
			if err = g.AddEdge(corner, v, m.At(corner, v)); err != nil {
				return nil, fmt.Errorf("tmfg.Construct: %w", err)
			}
		}
		gr.placed[v] = true
		gr.faces[k].alive = false
		// rescore faces that were waiting for v
		for i := range gr.faces {
			if gr.faces[i].alive && gr.faces[i].node == v {
				gr.rescore(i)
			}
		}
		gr.addFace(makeFace(f[0], f[1], v))
		gr.addFace(makeFace(f[0], f[2], v))
		gr.addFace(makeFace(f[1], f[2], v))
	}
	g.Freeze()

	faces := make([]Face, 0, 2*n-4)
	for _, fs := range gr.faces {
		if fs.alive {
			faces = append(faces, fs.face)
		}
	}
	sort.Slice(faces, func(i, j int) bool { return faces[i].less(faces[j]) })

	logging.OrDiscard(o.Logger).WithFields(logrus.Fields{
		"nodes":      n,
		"edges":      g.EdgeCount(),
		"seed":       seed,
		"seed_score": seedScore,
		"absolute":   o.Absolute,
	}).Debug("tmfg built")

	return &Result{Graph: g, Seed: seed, Order: order, Faces: faces}, nil
}

func (gr *grower) addFace(f Face) {
	gr.faces = append(gr.faces, faceState{face: f, alive: true})
	gr.rescore(len(gr.faces) - 1)
}

// rescore finds the best outside node for face i: largest gain, lowest node on ties.
func (gr *grower) rescore(i int) {
	fs := &gr.faces[i]
	fs.node, fs.gain = -1, math.Inf(-1)
	a, b, c := fs.face[0], fs.face[1], fs.face[2]
	for v := 0; v < gr.n; v++ {
		if gr.placed[v] {
			continue
		}
		gain := gr.w(v, a) + gr.w(v, b) + gr.w(v, c)
		if fs.node < 0 || gain > fs.gain {
			fs.node, fs.gain = v, gain
		}
	}
}

// pick returns the index of the live face with the best cached insertion.
func (gr *grower) pick() int {
	best := -1
	for i := range gr.faces {
		fs := &gr.faces[i]
		if !fs.alive || fs.node < 0 {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		cur := &gr.faces[best]
		switch {
		case fs.gain > cur.gain:
			best = i
		case fs.gain < cur.gain:
		case fs.node < cur.node:
			best = i
		case fs.node == cur.node && fs.face.less(cur.face):
			best = i
		}
	}

	return best
}

// chooseSeed returns the best 4-subset among the k strongest nodes and its score.
func chooseSeed(n int, w func(i, j int) float64, k int) ([4]int, float64) {
	strength := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				strength[i] += w(i, j)
			}
		}
	}
	cand := make([]int, n)
	for i := range cand {
		cand[i] = i
	}
	sort.SliceStable(cand, func(a, b int) bool { return strength[cand[a]] > strength[cand[b]] })
	if k > n {
		k = n
	}
	cand = cand[:k]
	sort.Ints(cand)

	var best [4]int
	bestScore := math.Inf(-1)
	var a, b, c, d int
	for a = 0; a < k; a++ {
		for b = a + 1; b < k; b++ {
			ab := w(cand[a], cand[b])
			for c = b + 1; c < k; c++ {
				abc := ab + w(cand[a], cand[c]) + w(cand[b], cand[c])
				for d = c + 1; d < k; d++ {
					s := abc + w(cand[a], cand[d]) + w(cand[b], cand[d]) + w(cand[c], cand[d])
					if s > bestScore {
						bestScore = s
						best = [4]int{cand[a], cand[b], cand[c], cand[d]}
					}
				}
			}
		}
	}

	return best, bestScore
}
