package confusion_test

import (
	"fmt"

	"github.com/katalvlaran/inkmatch/confusion"
	"github.com/katalvlaran/inkmatch/core"
)

// ExampleCluster groups a small hand-built confusion graph: A-B-C form a
// tight triangle, D is isolated.
func ExampleCluster() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("A", "C", 2)
	g.AddVertex("D")

	clusters, err := confusion.Cluster(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sizes := map[int]int{}
	for _, c := range clusters {
		sizes[len(c)]++
	}
	fmt.Println("cluster sizes seen:", sizes)
	// Output:
	// cluster sizes seen: map[1:1 3:1]
}

// ExampleShortestConfusionPath finds the cheapest two-hop chain between
// two characters that are not directly confusable with each other.
func ExampleShortestConfusionPath() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge(confusion.VertexID('A'), confusion.VertexID('B'), 1)
	g.AddEdge(confusion.VertexID('B'), confusion.VertexID('C'), 1)

	path, err := confusion.ShortestConfusionPath(g, confusion.VertexID('A'), confusion.VertexID('C'))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [U+0041 U+0042 U+0043]
}
