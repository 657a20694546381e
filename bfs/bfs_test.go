package bfs_test

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/katalvlaran/topcorr/bfs"
	"github.com/katalvlaran/topcorr/core"
)

// build returns an unfrozen graph on n nodes with unit-weight edges.
func build(t testing.TB, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := build(t, 2, nil)
	if _, err := bfs.BFS(g, 2); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, -1); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("negative start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.Diameter(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("Diameter(nil): want ErrGraphNil, got %v", err)
	}
	if _, err := bfs.Unreachable(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("Unreachable(nil): want ErrGraphNil, got %v", err)
	}
}

// TestCycleAndDepths covers a simple 4-cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if ecc := res.Eccentricity(); ecc != 2 {
		t.Errorf("Eccentricity = %d; want 2", ecc)
	}
}

// TestBFS_Disconnected checks that unreachable nodes keep depth −1.
func TestBFS_Disconnected(t *testing.T) {
	g := build(t, 5, [][2]int{{0, 1}, {2, 3}})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, -1, -1, -1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}

	missing, err := bfs.Unreachable(g)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{2, 3, 4}; !reflect.DeepEqual(missing, want) {
		t.Errorf("Unreachable = %v; want %v", missing, want)
	}
}

// TestDiameter measures chains, stars and a disconnected pair of paths.
func TestDiameter(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
		want  int
	}{
		{"empty", 0, nil, 0},
		{"isolated", 3, nil, 0},
		{"chain", 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, 4},
		{"star", 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, 2},
		{"two paths", 6, [][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 5}}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bfs.Diameter(build(t, tc.n, tc.edges))
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("Diameter = %d; want %d", got, tc.want)
			}
		})
	}
}

// TestComponentsAndShape covers the verification helpers.
func TestComponentsAndShape(t *testing.T) {
	forest := build(t, 6, [][2]int{{0, 1}, {1, 2}, {3, 4}})
	comp, count, err := bfs.Components(forest)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 || !reflect.DeepEqual(comp, []int{0, 0, 0, 1, 1, 2}) {
		t.Errorf("Components = %v (%d)", comp, count)
	}
	if ok, _ := bfs.IsConnected(forest); ok {
		t.Error("forest reported connected")
	}

	tree := build(t, 4, [][2]int{{0, 1}, {0, 2}, {2, 3}})
	if ok, err := bfs.IsTree(tree); !ok || err != nil {
		t.Errorf("IsTree(tree) = %v, %v", ok, err)
	}
	cycle := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	if ok, _ := bfs.IsTree(cycle); ok {
		t.Error("cycle reported as tree")
	}
	if ok, _ := bfs.IsConnected(cycle); !ok {
		t.Error("cycle reported disconnected")
	}
	if missing, _ := bfs.Unreachable(cycle); len(missing) != 0 {
		t.Errorf("Unreachable(cycle) = %v; want none", missing)
	}
	if _, err := bfs.IsTree(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("IsTree(nil): want ErrGraphNil, got %v", err)
	}
}

// TestBFS_ConcurrentSafety runs many walks over one frozen graph.
func TestBFS_ConcurrentSafety(t *testing.T) {
	var edges [][2]int
	for i := 1; i < 100; i++ {
		edges = append(edges, [2]int{i - 1, i})
	}
	g := build(t, 100, edges)
	g.Freeze()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			res, err := bfs.BFS(g, start)
			if err != nil || len(res.Order) != 100 {
				t.Errorf("start %d: %v, visited %d", start, err, len(res.Order))
			}
		}(w * 10)
	}
	wg.Wait()
}
