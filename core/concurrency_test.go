package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/inkmatch/core"
)

// TestConcurrentAddEdge exercises the same Graph from many goroutines the
// way confusion.BuildGraph's per-template scan would if parallelized: each
// goroutine adds a distinct edge from a shared hub vertex, and the final
// edge count must equal the number of goroutines with no lost writes.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	require.NoError(t, g.AddVertex("U+0041"))

	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			to := string(rune('A' + (i % 26)))
			_, err := g.AddEdge("U+0041", "to-"+to+string(rune(i)), int64(i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, g.Edges(), n)
}

// TestConcurrentReadsDuringWrites interleaves HasVertex/Vertices reads with
// AddVertex writes; none of it should race or panic (run with -race).
func TestConcurrentReadsDuringWrites(t *testing.T) {
	g := core.NewGraph()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = g.AddVertex(string(rune('A' + i%26)))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = g.HasVertex("A")
			_ = g.Vertices()
		}
	}()
	wg.Wait()
}
