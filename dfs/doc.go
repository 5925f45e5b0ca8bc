// Package dfs detects cycles of mutual confusability in a core.Graph
// built by confusion.BuildGraph.
//
// A cycle is a sequence of characters where each is confusable with the
// next and the last closes back to the first — a digit/letter cluster like
// '1'-'I'-'l'-'1' is the canonical example. confusion.Cluster runs
// DetectCycles on each component's forest after prim_kruskal.Kruskal has
// built the spanning tree and the heavy edges have been pruned, and treats
// any cycle found there as an error (ErrUnexpectedCycle).
//
// What
//
//   - DetectCycles finds cycles in a directed or undirected graph using
//     vertex coloring (White, Gray, Black) with back-edge recording and
//     canonical signature deduplication. It reports one cycle per back edge
//     met during the search; simple cycles that no back edge closes are not
//     listed.
//   - Each cycle is returned as a closed vertex sequence [v0, v1, ..., v0],
//     rotated to its lexicographically minimal form so that the same cycle
//     is never reported twice under a different starting vertex. In an
//     undirected graph the reversed order is also considered and the
//     smaller of the two is returned; a directed cycle keeps its direction.
//
// Complexity
//
//   - Time:   O(V + E + C·L)  (C = #cycles, L = average cycle length)
//   - Memory: O(V + L_max)
//
// Errors
//
//   - A nil graph is treated as cycle-free: DetectCycles(nil) returns
//     (false, nil, nil).
//   - Any error is a wrapped failure from the underlying graph's neighbor
//     lookup.
package dfs
