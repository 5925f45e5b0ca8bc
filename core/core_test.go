package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/inkmatch/core"
)

func TestAddVertex_IdempotentAndRejectsEmpty(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddVertex("U+0041"))
	require.NoError(t, g.AddVertex("U+0041")) // idempotent
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("U+0041"))
	assert.False(t, g.HasVertex("U+0042"))

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestVertices_SortedAscending(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"U+0043", "U+0041", "U+0042"} {
		require.NoError(t, g.AddVertex(id))
	}

	assert.Equal(t, []string{"U+0041", "U+0042", "U+0043"}, g.Vertices())
}

func TestAddEdge_WeightedUndirectedMirrorsAdjacency(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	eid, err := g.AddEdge("U+0041", "U+0042", 7)
	require.NoError(t, err)
	assert.NotEmpty(t, eid)

	assert.True(t, g.HasEdge("U+0041", "U+0042"))
	assert.True(t, g.HasEdge("U+0042", "U+0041")) // undirected: mirrored both ways
	assert.False(t, g.HasDirectedEdges())

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.EqualValues(t, 7, edges[0].Weight)
}

func TestAddEdge_RejectsNonZeroWeightWhenUnweighted(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("U+0041", "U+0042", 7)
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestAddEdge_RejectsSelfLoopByDefault(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	_, err := g.AddEdge("U+0041", "U+0041", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestAddEdge_RejectsParallelEdgeByDefault(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	_, err := g.AddEdge("U+0041", "U+0042", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("U+0041", "U+0042", 2)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestNeighbors_UndirectedBothEndpoints(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("U+0041", "U+0042", 3)
	require.NoError(t, err)
	_, err = g.AddEdge("U+0041", "U+0043", 9)
	require.NoError(t, err)

	ids, err := g.NeighborIDs("U+0041")
	require.NoError(t, err)
	assert.Equal(t, []string{"U+0042", "U+0043"}, ids)

	// Confusability is symmetric: U+0042 also neighbors U+0041.
	ids, err = g.NeighborIDs("U+0042")
	require.NoError(t, err)
	assert.Equal(t, []string{"U+0041"}, ids)
}

func TestNeighbors_MissingVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("U+FFFF")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestUnweightedView_ZeroesWeightsWithoutMutatingSource(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("U+0041", "U+0042", 5)
	require.NoError(t, err)

	view := core.UnweightedView(g)
	assert.False(t, view.Weighted())
	for _, e := range view.Edges() {
		assert.EqualValues(t, 0, e.Weight)
	}

	// Source graph is untouched.
	assert.EqualValues(t, 5, g.Edges()[0].Weight)
}

func TestInducedSubgraph_KeepsOnlySelectedVertices(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("U+0041", "U+0042", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("U+0042", "U+0043", 2)
	require.NoError(t, err)

	sub := core.InducedSubgraph(g, map[string]bool{"U+0041": true, "U+0042": true})
	assert.ElementsMatch(t, []string{"U+0041", "U+0042"}, sub.Vertices())
	require.Len(t, sub.Edges(), 1)
	assert.True(t, sub.HasEdge("U+0041", "U+0042"))
	assert.False(t, sub.HasVertex("U+0043"))
}
