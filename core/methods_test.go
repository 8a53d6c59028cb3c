// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lvlath-hits/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	// Loops rejected by default, accepted with WithLoops.
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "A")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	gl := core.NewGraph(core.WithDirected(true), core.WithLoops())
	eid, err := gl.AddEdge("A", "A")
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)
	assert.Equal(t, []string{"A"}, gl.Successors("A"))
	assert.Equal(t, []string{"A"}, gl.Predecessors("A"))

	// Parallel edges rejected unless WithMultiEdges.
	_, err = g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	assert.False(t, g.Multigraph())

	gm := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	e1, err := gm.AddEdge("A", "B")
	require.NoError(t, err)
	e2, err := gm.AddEdge("A", "B")
	require.NoError(t, err)
	assert.NotEqual(t, e1, e2)
	assert.Equal(t, 2, gm.EdgeCount())
	assert.True(t, gm.Multigraph())
	assert.Equal(t, []string{"B"}, gm.Successors("A"), "successors stay unique")

	_, err = g.AddEdge("", "B")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_DirectedNeighborhood(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"A", "C"}, {"A", "B"}, {"B", "C"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"B", "C"}, g.Successors("A"))
	assert.Empty(t, g.Predecessors("A"))
	assert.Equal(t, []string{"A", "B"}, g.Predecessors("C"))
	assert.Empty(t, g.Successors("C"))
	assert.Empty(t, g.Successors("missing"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
}

func TestGraph_UndirectedNeighborhood(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)

	assert.Equal(t, []string{"B"}, g.Successors("A"))
	assert.Equal(t, []string{"A"}, g.Successors("B"))
	assert.Equal(t, []string{"B"}, g.Predecessors("A"))
	assert.True(t, g.HasEdge("B", "A"))
	_, err = g.AddEdge("B", "A")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestGraph_EdgesOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("S", string(rune('a'+i)))
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, 12)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e10", edges[9].ID)
	assert.Equal(t, "e12", edges[11].ID)
}

func TestGraph_VertexAttr(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	require.NoError(t, g.SetVertexAttr("A", "hub", 0.25))
	v, ok := g.VertexAttr("A", "hub")
	require.True(t, ok)
	assert.Equal(t, 0.25, v)

	require.NoError(t, g.SetVertexAttr("A", "hub", 0.5)) // overwrite
	v, _ = g.VertexAttr("A", "hub")
	assert.Equal(t, 0.5, v)

	_, ok = g.VertexAttr("A", "authority")
	assert.False(t, ok)
	_, ok = g.VertexAttr("Z", "hub")
	assert.False(t, ok)

	require.ErrorIs(t, g.SetVertexAttr("Z", "hub", 1.0), core.ErrVertexNotFound)
	require.ErrorIs(t, g.SetVertexAttr("", "hub", 1.0), core.ErrEmptyVertexID)
}

func TestGraph_CloneIsDeep(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	require.NoError(t, g.SetVertexAttr("A", "k", 1))

	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())
	assert.True(t, c.Directed())

	require.NoError(t, c.SetVertexAttr("A", "k", 2))
	_, err = c.AddEdge("B", "C")
	require.NoError(t, err)

	v, _ := g.VertexAttr("A", "k")
	assert.Equal(t, 1, v)
	assert.False(t, g.HasVertex("C"))
	assert.Equal(t, "e2", c.Edges()[1].ID, "clone continues the edge ID sequence")
}

func TestGraph_IsNil(t *testing.T) {
	var g *core.Graph
	assert.True(t, g.IsNil())
	assert.False(t, core.NewGraph().IsNil())
}

func TestGraph_ConcurrentAttrWrites(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 50; i++ {
		_, err := g.AddEdge("hub", string(rune('A'+i)))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	ids := g.Vertices()
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_ = g.SetVertexAttr(id, "score", len(g.Successors(id)))
		}(id)
	}
	wg.Wait()

	v, ok := g.VertexAttr("hub", "score")
	require.True(t, ok)
	assert.Equal(t, 50, v)
}
