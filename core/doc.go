// Package core provides the confusion-graph data structure the rest of the
// pipeline builds and queries: a thread-safe, in-memory Graph whose vertices
// are character code points and whose edges record DTW-distance
// confusability links between them.
//
// confusion.BuildGraph is the sole producer of these graphs: it constructs
// one vertex per model template and adds a weighted, undirected edge for
// every pair a recognizer.Recognizer's windowed search placed within a
// distance threshold of each other. confusion.Cluster and
// confusion.ShortestConfusionPath are the consumers, walking the result with
// bfs.BFS, dfs.DetectCycles, dijkstra.Dijkstra, and prim_kruskal.Kruskal.
//
// Graph options:
//
//	– WithDirected(defaultDirected bool)  default edge orientation
//	– WithWeighted()                      permit non-zero weights (confusion graphs always set this)
//	– WithMultiEdges()                    permit parallel edges
//	– WithLoops()                         permit self-loops
//	– WithMixedEdges()                    permit per-edge WithEdgeDirected overrides
//
// Core methods:
//
//	AddVertex(id string) error
//	HasVertex(id string) bool
//	AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error)
//	HasEdge(from, to string) bool
//	HasDirectedEdges() bool
//	Neighbors(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//	Vertices() []string
//	VertexCount() int
//	Edges() []*Edge
//
// Non-mutating views (view.go):
//
//	UnweightedView(g *Graph) *Graph
//	InducedSubgraph(g *Graph, keep map[string]bool) *Graph
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
package core
