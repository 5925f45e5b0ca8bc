package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/inkmatch/core"
	"github.com/katalvlaran/inkmatch/prim_kruskal"
)

// vid mirrors confusion.VertexID's "U+XXXX" formatting without importing the
// confusion package, keeping prim_kruskal's tests dependency-free of the
// package that consumes it.
func vid(r rune) string {
	const digits = "0123456789ABCDEF"
	var v = uint32(r)
	out := [4]byte{}
	for i := 3; i >= 0; i-- {
		out[i] = digits[v&0xF]
		v >>= 4
	}
	return "U+" + string(out[:])
}

// buildConfusionTriangle constructs a 3-character confusion component:
// '0'-'O' (weight 1), 'O'-'Q' (weight 2), '0'-'Q' (weight 3, redundant).
func buildConfusionTriangle() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(vid('0'), vid('O'), 1)
	_, _ = g.AddEdge(vid('O'), vid('Q'), 2)
	_, _ = g.AddEdge(vid('0'), vid('Q'), 3)

	return g
}

// buildLargeConfusionComponent builds a connected, weighted graph over n
// synthetic characters and edgesCount confusion edges: a chain guarantees
// connectivity, then extra random edges simulate additional look-alike
// pairs a DTW search might have surfaced.
func buildLargeConfusionComponent(n, edgesCount int) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		_ = g.AddVertex(vid(rune(i)))
	}

	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		weight := int64(1 + r.Intn(10))
		_, _ = g.AddEdge(vid(rune(i-1)), vid(rune(i)), weight)
	}

	extra := edgesCount - (n - 1)
	for i := 0; i < extra; {
		u := r.Intn(n)
		v := r.Intn(n)
		if u == v {
			continue
		}
		weight := int64(1 + r.Intn(100))
		if _, err := g.AddEdge(vid(rune(u)), vid(rune(v)), weight); err == nil {
			i++
		}
	}

	return g
}

func TestKruskal_EmptyGraph_ReturnsDisconnected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	edges, total, err := prim_kruskal.Kruskal(g)
	assert.Empty(t, edges)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestKruskal_UnweightedOrDirected_ReturnsInvalidGraph(t *testing.T) {
	gUnweighted := core.NewGraph()
	_, _, err := prim_kruskal.Kruskal(gUnweighted)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	gDirected := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _, err = prim_kruskal.Kruskal(gDirected)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

// TestKruskal_ConfusionTriangle verifies Kruskal collapses the redundant
// '0'-'Q' edge, keeping the two cheapest links.
func TestKruskal_ConfusionTriangle(t *testing.T) {
	g := buildConfusionTriangle()

	mst, total, err := prim_kruskal.Kruskal(g)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, mst, 2)

	names := make(map[string]bool, 2)
	for _, e := range mst {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		names[fmt.Sprintf("%s-%s", u, v)] = true
	}
	a, b := vid('0'), vid('O')
	if a > b {
		a, b = b, a
	}
	assert.True(t, names[fmt.Sprintf("%s-%s", a, b)], "edge 0-O must be in MST")
	c, d := vid('O'), vid('Q')
	if c > d {
		c, d = d, c
	}
	assert.True(t, names[fmt.Sprintf("%s-%s", c, d)], "edge O-Q must be in MST")
}

func TestKruskal_SingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex(vid('5'))

	mst, total, err := prim_kruskal.Kruskal(g)
	assert.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)
}

func TestKruskal_TwoIsolatedVertices_ReturnsDisconnected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex(vid('5'))
	_ = g.AddVertex(vid('S'))

	_, _, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

// TestKruskal_ParallelConfusionEdges verifies that when a pair of characters
// was flagged confusable by two different candidate searches with differing
// scaled DTW distances, Kruskal keeps only the lighter edge.
func TestKruskal_ParallelConfusionEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, err1 := g.AddEdge(vid('1'), vid('I'), 5)
	assert.NoError(t, err1)
	_, err2 := g.AddEdge(vid('1'), vid('I'), 1)
	assert.NoError(t, err2)

	mst, total, err := prim_kruskal.Kruskal(g)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, mst, 1)
}

// TestKruskal_MixedEdgesRejected verifies Kruskal refuses a graph carrying
// any per-edge directed override, even if most edges are undirected.
func TestKruskal_MixedEdgesRejected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMixedEdges())
	_, err := g.AddEdge(vid('1'), vid('I'), 1, core.WithEdgeDirected(true))
	assert.NoError(t, err)

	_, _, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

// TestKruskal_LargeComponent checks Kruskal always spans a connected
// component in exactly |V|-1 edges, at the scale of a large confusion set.
func TestKruskal_LargeComponent(t *testing.T) {
	g := buildLargeConfusionComponent(200, 400)

	mst, _, err := prim_kruskal.Kruskal(g)
	assert.NoError(t, err)
	assert.Len(t, mst, len(g.Vertices())-1)
}
