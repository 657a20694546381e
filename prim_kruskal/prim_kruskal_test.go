package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topcorr/core"
	"github.com/katalvlaran/topcorr/corr"
	"github.com/katalvlaran/topcorr/dsu"
	"github.com/katalvlaran/topcorr/prim_kruskal"
)

func fourNodes() corr.Rows {
	return corr.Rows{
		{1, 0.9, 0.8, 0.7},
		{0.9, 1, 0.6, 0.5},
		{0.8, 0.6, 1, 0.4},
		{0.7, 0.5, 0.4, 1},
	}
}

// clusterSix has a tight cluster {0,1,2} and three weak nodes that each
// prefer a different cluster member.
func clusterSix() corr.Rows {
	return corr.Rows{
		{1, 0.9, 0.85, 0.3, 0.1, 0.05},
		{0.9, 1, 0.8, 0.2, 0.35, 0.1},
		{0.85, 0.8, 1, 0.1, 0.15, 0.4},
		{0.3, 0.2, 0.1, 1, 0.05, 0.25},
		{0.1, 0.35, 0.15, 0.05, 1, 0},
		{0.05, 0.1, 0.4, 0.25, 0, 1},
	}
}

// randomRows returns a symmetric unit-diagonal matrix with entries in (-1, 1).
func randomRows(n int, seed int64) corr.Rows {
	rng := rand.New(rand.NewSource(seed))
	rows := make(corr.Rows, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rng.Float64()*1.98 - 0.99
			rows[i][j], rows[j][i] = v, v
		}
	}

	return rows
}

func pairs(g *core.Graph) [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, [2]int{e.U, e.V})
	}

	return out
}

func TestMST_FourNodes(t *testing.T) {
	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		t.Run(method, func(t *testing.T) {
			g, err := prim_kruskal.Compute(fourNodes(), prim_kruskal.WithMethod(method))
			require.NoError(t, err)
			assert.True(t, g.Frozen())
			assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}}, pairs(g))
			assert.InDelta(t, 2.4, g.TotalWeight(), 1e-12)
		})
	}
}

func TestMST_ClusterBridges(t *testing.T) {
	want := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 4}, {2, 5}}
	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		t.Run(method, func(t *testing.T) {
			g, err := prim_kruskal.Compute(clusterSix(), prim_kruskal.WithMethod(method))
			require.NoError(t, err)
			assert.Equal(t, want, pairs(g))
			w, ok := g.Weight(2, 5)
			assert.True(t, ok)
			assert.Equal(t, 0.4, w)
		})
	}
}

func TestMST_MatchesBruteForce(t *testing.T) {
	const n = 5
	for seed := int64(1); seed <= 20; seed++ {
		rows := randomRows(n, seed)

		var all [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				all = append(all, [2]int{i, j})
			}
		}
		best := math.Inf(1)
		// every 4-subset of the 10 pairs
		for a := 0; a < len(all); a++ {
			for b := a + 1; b < len(all); b++ {
				for c := b + 1; c < len(all); c++ {
					for d := c + 1; d < len(all); d++ {
						f := dsu.New(n)
						sum, tree := 0.0, true
						for _, k := range []int{a, b, c, d} {
							p := all[k]
							if !f.Union(p[0], p[1]) {
								tree = false
								break
							}
							sum += prim_kruskal.CanonicalDistance(rows[p[0]][p[1]])
						}
						if tree && sum < best {
							best = sum
						}
					}
				}
			}
		}

		for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
			g, err := prim_kruskal.Compute(rows, prim_kruskal.WithMethod(method))
			require.NoError(t, err)
			assert.Equal(t, n-1, g.EdgeCount())
			assert.InDelta(t, best, prim_kruskal.TreeDistance(g, nil), 1e-9, "seed %d method %s", seed, method)
		}
	}
}

func TestMST_InvariantUnderMonotoneDistance(t *testing.T) {
	rows := randomRows(12, 7)
	base, err := prim_kruskal.Kruskal(rows)
	require.NoError(t, err)

	linear, err := prim_kruskal.Kruskal(rows, prim_kruskal.WithDistance(func(c float64) float64 { return 1 - c }))
	require.NoError(t, err)
	assert.Equal(t, pairs(base), pairs(linear))

	prim, err := prim_kruskal.Prim(rows, prim_kruskal.WithRoot(5))
	require.NoError(t, err)
	assert.Equal(t, pairs(base), pairs(prim))
}

func TestMST_TiesAreDeterministic(t *testing.T) {
	// every off-diagonal pair equal: the (u,v) rule picks the star on node 0
	n := 5
	rows := make(corr.Rows, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 0.5
		}
		rows[i][i] = 1
	}
	for i := 0; i < 3; i++ {
		g, err := prim_kruskal.Kruskal(rows)
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, pairs(g))
	}
	g, err := prim_kruskal.Prim(rows)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, pairs(g))
}

func TestMST_Labels(t *testing.T) {
	m, err := corr.New(fourNodes(), corr.WithLabels([]string{"AAA", "BBB", "CCC", "DDD"}))
	require.NoError(t, err)

	g, err := prim_kruskal.Kruskal(m)
	require.NoError(t, err)
	assert.Equal(t, "DDD", g.Label(3))

	g, err = prim_kruskal.Prim(m, prim_kruskal.WithLabels([]string{"a", "b", "c", "d"}))
	require.NoError(t, err)
	assert.Equal(t, "d", g.Label(3))
}

func TestMST_Errors(t *testing.T) {
	asym := corr.Rows{{1, 0.5, 0.2}, {0.4, 1, 0.1}, {0.2, 0.1, 1}}
	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		g, err := prim_kruskal.Compute(asym, prim_kruskal.WithMethod(method))
		assert.Nil(t, g)
		assert.ErrorIs(t, err, corr.ErrInvalidMatrix)
		assert.ErrorIs(t, err, corr.ErrAsymmetry)
	}

	_, err := prim_kruskal.Kruskal(corr.Rows{{1}})
	assert.ErrorIs(t, err, corr.ErrInsufficientNodes)

	_, err = prim_kruskal.Compute(fourNodes(), prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidOption)

	_, err = prim_kruskal.Prim(fourNodes(), prim_kruskal.WithRoot(4))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidOption)

	nan := prim_kruskal.WithDistance(func(float64) float64 { return math.NaN() })
	_, err = prim_kruskal.Kruskal(fourNodes(), nan)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidOption)
}

func TestMST_DisconnectedByFilter(t *testing.T) {
	isolate3 := prim_kruskal.WithEdgeFilter(func(u, v int, _ float64) bool {
		return u != 3 && v != 3
	})
	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		g, err := prim_kruskal.Compute(fourNodes(), prim_kruskal.WithMethod(method), isolate3)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	}

	// masking a non-bridge pair still yields a spanning tree
	drop01 := prim_kruskal.WithEdgeFilter(func(u, v int, _ float64) bool {
		return !(u == 0 && v == 1)
	})
	g, err := prim_kruskal.Kruskal(fourNodes(), drop01)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 2}, {0, 3}, {1, 2}}, pairs(g))
}

func TestCanonicalDistance(t *testing.T) {
	assert.Equal(t, 0.0, prim_kruskal.CanonicalDistance(1))
	assert.Equal(t, 0.0, prim_kruskal.CanonicalDistance(1+1e-12))
	assert.InDelta(t, 2.0, prim_kruskal.CanonicalDistance(-1), 1e-15)
	assert.InDelta(t, math.Sqrt(2), prim_kruskal.CanonicalDistance(0), 1e-15)
}

func TestMST_RaisingACorrelationNeverLengthensTheTree(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rows := randomRows(8, seed)
		before, err := prim_kruskal.Kruskal(rows)
		require.NoError(t, err)

		bumped := make(corr.Rows, len(rows))
		for i := range rows {
			bumped[i] = append([]float64(nil), rows[i]...)
		}
		u, v := int(seed%7), 7
		bumped[u][v] = math.Min(1, bumped[u][v]+0.5)
		bumped[v][u] = bumped[u][v]

		after, err := prim_kruskal.Kruskal(bumped)
		require.NoError(t, err)
		assert.LessOrEqual(t,
			prim_kruskal.TreeDistance(after, nil),
			prim_kruskal.TreeDistance(before, nil)+1e-12, "seed %d", seed)
	}
}
