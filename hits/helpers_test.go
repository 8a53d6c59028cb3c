package hits_test

import (
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvlath-hits/core"
)

// scoreTol is the absolute tolerance used against published reference vectors.
const scoreTol = 1e-4

// referenceEdges is the six-node reference graph:
//
//	2 → 1 → 3 ⇄ 5 → 4
//	    └──────↗ ↖
//	             6
var referenceEdges = [][2]string{
	{"1", "3"}, {"1", "5"}, {"2", "1"}, {"3", "5"}, {"5", "4"}, {"5", "3"}, {"6", "5"},
}

var wantAuthorities = map[string]float64{
	"1": 0, "2": 0, "3": 0.366025, "4": 0.133975, "5": 0.5, "6": 0,
}

var wantHubs = map[string]float64{
	"1": 0.366025, "2": 0, "3": 0.211325, "4": 0, "5": 0.211325, "6": 0.211325,
}

// buildReference returns the directed reference graph with vertices 1..6.
func buildReference(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for i := 1; i <= 6; i++ {
		require.NoError(t, g.AddVertex(strconv.Itoa(i)))
	}
	for _, e := range referenceEdges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// buildRandom creates a directed graph with n vertices "V0".."V(n-1)" and up
// to m distinct random edges (self-loops skipped). Seeded for reproducibility.
func buildRandom(t testing.TB, n, m int, seed int64) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < m; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_, _ = g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v)) // duplicates rejected, skipped
	}

	return g
}

// requireScores checks every entry of want against got within tol.
func requireScores(t *testing.T, got, want map[string]float64, tol float64, what string) {
	t.Helper()
	require.Len(t, got, len(want), what)
	for k, w := range want {
		g, ok := got[k]
		require.True(t, ok, "%s: missing node %s", what, k)
		require.True(t, scalar.EqualWithinAbs(g, w, tol), "%s[%s] = %.6f; want %.6f", what, k, g, w)
	}
}

func sum[K comparable](m map[K]float64) float64 {
	var s float64
	for _, v := range m {
		s += v
	}

	return s
}

// fakeGraph is a hand-wired Graph[int] used to feed inconsistent data to the
// validator.
type fakeGraph struct {
	count int
	nodes []int
	succ  map[int][]int
	pred  map[int][]int
	multi bool
}

func (f *fakeGraph) VertexCount() int { return f.count }
func (f *fakeGraph) Vertices() []int { return f.nodes }
func (f *fakeGraph) Successors(u int) []int { return f.succ[u] }
func (f *fakeGraph) Predecessors(v int) []int { return f.pred[v] }
func (f *fakeGraph) Multigraph() bool { return f.multi }
func (f *fakeGraph) IsNil() bool { return f == nil }

// recordingSetter collects attribute writes and can fail on demand.
type recordingSetter struct {
	attrs  map[int]map[string]any
	failOn string
}

func (r *recordingSetter) SetVertexAttr(node int, key string, value any) error {
	if key == r.failOn {
		return fmt.Errorf("refusing %s", key)
	}
	if r.attrs == nil {
		r.attrs = make(map[int]map[string]any)
	}
	if r.attrs[node] == nil {
		r.attrs[node] = make(map[string]any)
	}
	r.attrs[node][key] = value

	return nil
}
