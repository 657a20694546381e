package tmfg_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topcorr/bfs"
	"github.com/katalvlaran/topcorr/corr"
	"github.com/katalvlaran/topcorr/planar"
	"github.com/katalvlaran/topcorr/synth"
	"github.com/katalvlaran/topcorr/tmfg"
)

func TestConstruct_FourNodesIsTetrahedron(t *testing.T) {
	m, err := synth.Distinct(4)
	require.NoError(t, err)

	res, err := tmfg.Construct(m)
	require.NoError(t, err)
	assert.Equal(t, [4]int{0, 1, 2, 3}, res.Seed)
	assert.Empty(t, res.Order)
	assert.Equal(t, 6, res.Graph.EdgeCount())
	assert.Equal(t, []tmfg.Face{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}, res.Faces)
}

func TestConstruct_FiveNodesByHand(t *testing.T) {
	// Distinct(5): the seed {0,1,2,3} scores 4.344; node 4 gains most on
	// face (0,1,2): 0.733+0.567+0.456.
	m, err := synth.Distinct(5)
	require.NoError(t, err)

	res, err := tmfg.Construct(m)
	require.NoError(t, err)
	assert.Equal(t, [4]int{0, 1, 2, 3}, res.Seed)
	require.Len(t, res.Order, 1)
	assert.Equal(t, 4, res.Order[0].Node)
	assert.Equal(t, tmfg.Face{0, 1, 2}, res.Order[0].Face)
	assert.InDelta(t, m.At(4, 0)+m.At(4, 1)+m.At(4, 2), res.Order[0].Gain, 1e-12)
	assert.False(t, res.Graph.HasEdge(3, 4))
	assert.Equal(t, 9, res.Graph.EdgeCount())
}

func TestConstruct_Structure(t *testing.T) {
	for _, n := range []int{6, 11, 20, 40} {
		m, err := synth.Random(n, 3, synth.WithSeed(int64(n)))
		require.NoError(t, err)

		res, err := tmfg.Construct(m)
		require.NoError(t, err)
		g := res.Graph
		assert.Equal(t, 3*n-6, g.EdgeCount(), "n=%d", n)
		assert.Len(t, res.Faces, 2*n-4, "n=%d", n)
		assert.Len(t, res.Order, n-4, "n=%d", n)
		assert.True(t, planar.Check(g), "n=%d", n)
		connected, err := bfs.IsConnected(g)
		require.NoError(t, err)
		assert.True(t, connected)

		for _, f := range res.Faces {
			assert.True(t, g.HasEdge(f[0], f[1]) && g.HasEdge(f[0], f[2]) && g.HasEdge(f[1], f[2]), "face %v", f)
		}
		for _, e := range g.Edges() {
			assert.Equal(t, m.At(e.U, e.V), e.Weight)
		}
	}
}

func TestConstruct_GreedyChoiceIsGlobalMaximum(t *testing.T) {
	m, err := synth.Random(14, 2, synth.WithSeed(9))
	require.NoError(t, err)
	res, err := tmfg.Construct(m)
	require.NoError(t, err)

	// replay the growth and check every step against an exhaustive scan
	placed := map[int]bool{}
	for _, v := range res.Seed {
		placed[v] = true
	}
	s := res.Seed
	faces := map[tmfg.Face]bool{
		{s[0], s[1], s[2]}: true, {s[0], s[1], s[3]}: true,
		{s[0], s[2], s[3]}: true, {s[1], s[2], s[3]}: true,
	}
	for _, step := range res.Order {
		best := -1e18
		for f := range faces {
			for v := 0; v < 14; v++ {
				if placed[v] {
					continue
				}
				if g := m.At(v, f[0]) + m.At(v, f[1]) + m.At(v, f[2]); g > best {
					best = g
				}
			}
		}
		assert.InDelta(t, best, step.Gain, 1e-12)
		require.True(t, faces[step.Face])

		f, v := step.Face, step.Node
		delete(faces, f)
		placed[v] = true
		for _, nf := range [][3]int{{f[0], f[1], v}, {f[0], f[2], v}, {f[1], f[2], v}} {
			faces[sorted(nf)] = true
		}
	}
	assert.Len(t, faces, 2*14-4)
}

func sorted(f [3]int) tmfg.Face {
	a, b, c := f[0], f[1], f[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}

	return tmfg.Face{a, b, c}
}

func TestConstruct_TiesAreDeterministic(t *testing.T) {
	m, err := synth.Block(8, 1, 0.5, 0.5)
	require.NoError(t, err)

	a, err := tmfg.Construct(m)
	require.NoError(t, err)
	b, err := tmfg.Construct(m)
	require.NoError(t, err)
	if diff := cmp.Diff(a.Order, b.Order); diff != "" {
		t.Fatalf("insertion order differs:\n%s", diff)
	}
	assert.Equal(t, [4]int{0, 1, 2, 3}, a.Seed)
	assert.Equal(t, tmfg.Insertion{Node: 4, Face: tmfg.Face{0, 1, 2}, Gain: 1.5}, a.Order[0])
	assert.Equal(t, 5, a.Order[1].Node)
	assert.Equal(t, tmfg.Face{0, 1, 3}, a.Order[1].Face)
	assert.Equal(t, a.Graph.Edges(), b.Graph.Edges())
}

func TestConstruct_AbsoluteWeighting(t *testing.T) {
	rows := make([][]float64, 5)
	base, err := synth.Distinct(5)
	require.NoError(t, err)
	for i := range rows {
		rows[i] = base.Row(i)
	}
	rows[3][4], rows[4][3] = -0.95, -0.95

	signed, err := tmfg.Construct(corr.Rows(rows))
	require.NoError(t, err)
	assert.Equal(t, [4]int{0, 1, 2, 3}, signed.Seed)
	assert.False(t, signed.Graph.HasEdge(3, 4))

	abs, err := tmfg.Construct(corr.Rows(rows), tmfg.WithAbsolute())
	require.NoError(t, err)
	assert.Equal(t, [4]int{0, 1, 3, 4}, abs.Seed)
	w, ok := abs.Graph.Weight(3, 4)
	assert.True(t, ok)
	assert.Equal(t, -0.95, w)
}

func TestConstruct_SeedCandidates(t *testing.T) {
	m, err := synth.Random(12, 2, synth.WithSeed(4))
	require.NoError(t, err)

	narrow, err := tmfg.Construct(m, tmfg.WithSeedCandidates(4))
	require.NoError(t, err)
	assert.Equal(t, 30, narrow.Graph.EdgeCount())

	_, err = tmfg.Construct(m, tmfg.WithSeedCandidates(3))
	assert.ErrorIs(t, err, tmfg.ErrInvalidOption)
}

func TestBuild_Errors(t *testing.T) {
	_, err := tmfg.Build(corr.Rows{{1, 0.5, 0.2}, {0.4, 1, 0.1}, {0.2, 0.1, 1}})
	assert.ErrorIs(t, err, corr.ErrInvalidMatrix)
	assert.ErrorIs(t, err, corr.ErrAsymmetry)

	m, err := synth.Distinct(3)
	require.NoError(t, err)
	g, err := tmfg.Build(m)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, corr.ErrInsufficientNodes)

	m, err = synth.Distinct(5)
	require.NoError(t, err)
	g, err = tmfg.Build(m, tmfg.WithLabels([]string{"a", "b", "c", "d", "e"}))
	require.NoError(t, err)
	assert.Equal(t, "e", g.Label(4))
}
