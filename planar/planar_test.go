package planar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topcorr/core"
	"github.com/katalvlaran/topcorr/planar"
)

func complete(n int) [][2]int {
	var out [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, [2]int{i, j})
		}
	}

	return out
}

func k33() [][2]int {
	var out [][2]int
	for _, a := range []int{0, 1, 2} {
		for _, b := range []int{3, 4, 5} {
			out = append(out, [2]int{a, b})
		}
	}

	return out
}

func petersen() [][2]int {
	var out [][2]int
	for i := 0; i < 5; i++ {
		out = append(out,
			[2]int{i, (i + 1) % 5},
			[2]int{5 + i, 5 + (i+2)%5},
			[2]int{i, 5 + i},
		)
	}

	return out
}

func octahedron() [][2]int {
	var out [][2]int
	for _, e := range complete(6) {
		if (e[0] == 0 && e[1] == 5) || (e[0] == 1 && e[1] == 3) || (e[0] == 2 && e[1] == 4) {
			continue
		}
		out = append(out, e)
	}

	return out
}

func icosahedron() [][2]int {
	var out [][2]int
	for i := 1; i <= 5; i++ {
		next := i%5 + 1
		out = append(out,
			[2]int{0, i},
			[2]int{i, next},
			[2]int{5 + i, 5 + next},
			[2]int{11, 5 + i},
			[2]int{i, 5 + i},
			[2]int{i, 5 + next},
		)
	}

	return out
}

func grid(w, h int) [][2]int {
	var out [][2]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := y*w + x
			if x+1 < w {
				out = append(out, [2]int{id, id + 1})
			}
			if y+1 < h {
				out = append(out, [2]int{id, id + w})
			}
		}
	}

	return out
}

// apollonian grows a random maximal planar graph by repeated face insertion.
func apollonian(n int, seed int64) [][2]int {
	rng := rand.New(rand.NewSource(seed))
	edges := complete(4)
	faces := [][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	for v := 4; v < n; v++ {
		k := rng.Intn(len(faces))
		f := faces[k]
		edges = append(edges, [2]int{f[0], v}, [2]int{f[1], v}, [2]int{f[2], v})
		faces[k] = [3]int{f[0], f[1], v}
		faces = append(faces, [3]int{f[1], f[2], v}, [3]int{f[0], f[2], v})
	}

	return edges
}

func shift(edges [][2]int, by int) [][2]int {
	out := make([][2]int, len(edges))
	for i, e := range edges {
		out[i] = [2]int{e[0] + by, e[1] + by}
	}

	return out
}

// shuffled relabels nodes by a random permutation and shuffles edge order.
func shuffled(n int, edges [][2]int, seed int64) [][2]int {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)
	out := make([][2]int, len(edges))
	for i, e := range edges {
		a, b := perm[e[0]], perm[e[1]]
		if rng.Intn(2) == 0 {
			a, b = b, a
		}
		out[i] = [2]int{a, b}
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

func TestIsPlanar(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
		want  bool
	}{
		{"empty", 0, nil, true},
		{"K4", 4, complete(4), true},
		{"K5 minus edge", 5, complete(5)[1:], true},
		{"K5", 5, complete(5), false},
		{"K5 with isolated nodes", 9, complete(5), false},
		{"K3,3", 6, k33(), false},
		{"K3,3 minus edge", 6, k33()[1:], true},
		{"Petersen", 10, petersen(), false},
		{"octahedron", 6, octahedron(), true},
		{"icosahedron", 12, icosahedron(), true},
		{"grid 5x5", 25, grid(5, 5), true},
		{"two K4 joined", 8, append(append(complete(4), shift(complete(4), 4)...), [2]int{3, 4}), true},
		{"K4 beside K3,3", 10, append(complete(4), shift(k33(), 4)...), false},
		{"apollonian 40", 40, apollonian(40, 3), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, planar.IsPlanar(tc.n, tc.edges))
		})
	}
}

func TestIsPlanar_InvariantUnderRelabeling(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		assert.False(t, planar.IsPlanar(6, shuffled(6, k33(), seed)), "K3,3 seed %d", seed)
		assert.False(t, planar.IsPlanar(10, shuffled(10, petersen(), seed)), "Petersen seed %d", seed)
		assert.False(t, planar.IsPlanar(8, shuffled(8, complete(5), seed)), "K5 seed %d", seed)
		assert.True(t, planar.IsPlanar(12, shuffled(12, icosahedron(), seed)), "icosahedron seed %d", seed)
		assert.True(t, planar.IsPlanar(30, shuffled(30, apollonian(30, seed), seed)), "apollonian seed %d", seed)
	}
}

func TestIsPlanar_SubdividedK5(t *testing.T) {
	// replace every edge of K5 by a path of length 2
	var edges [][2]int
	next := 5
	for _, e := range complete(5) {
		edges = append(edges, [2]int{e[0], next}, [2]int{next, e[1]})
		next++
	}
	assert.False(t, planar.IsPlanar(next, edges))
	assert.True(t, planar.IsPlanar(next, edges[2:]))
}

func TestCheck(t *testing.T) {
	g, err := core.NewGraph(6, nil)
	require.NoError(t, err)
	for _, e := range octahedron() {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	assert.True(t, planar.Check(g))

	h, err := core.NewGraph(6, nil)
	require.NoError(t, err)
	for _, e := range k33() {
		require.NoError(t, h.AddEdge(e[0], e[1], 1))
	}
	assert.False(t, planar.Check(h))
}

func TestMaxEdges(t *testing.T) {
	assert.Equal(t, 0, planar.MaxEdges(1))
	assert.Equal(t, 1, planar.MaxEdges(2))
	assert.Equal(t, 3, planar.MaxEdges(3))
	assert.Equal(t, 6, planar.MaxEdges(4))
	assert.Equal(t, 294, planar.MaxEdges(100))
}
