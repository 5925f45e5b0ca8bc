// Package dfs detects cycles in a core.Graph: closed loops of mutual
// confusability that confusion.Cluster must not carry into its minimum
// spanning forest.
package dfs

// VertexState marks a vertex's position in DetectCycles' recursion stack.
const (
	White = iota // not yet visited
	Gray         // on the current DFS path
	Black        // fully explored, including all descendants
)
