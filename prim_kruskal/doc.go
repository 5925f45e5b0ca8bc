// Package prim_kruskal computes the minimum spanning tree (MST) of one
// connected component of a confusion graph using Kruskal's algorithm:
// global edge sort plus union-find.
//
// A confusion graph's connected component can contain a cycle — several
// characters each confusable with the next, closing back on itself (see
// dfs.DetectCycles). Before such a component is reported, confusion.Cluster
// asks Kruskal for its MST: the subset of confusion edges that keeps every
// character reachable from every other, using the least total distance,
// discarding the costlier redundant edges a cycle implies.
//
// Algorithm
//
//   - Sort all edges by ascending weight (stable, so equal-weight ties
//     break by original Edge.ID order — core.Graph.Edges() is itself
//     sorted by ID).
//   - Walk the sorted edges with a union-find (disjoint-set) structure,
//     adding an edge whenever its endpoints are in different components.
//   - Stop once |V|-1 edges have been added.
//
// Complexity
//
//   - Time:  O(E log E + α(V)·E) ≈ O(E log V)
//   - Space: O(V + E)
//
// Errors
//
//   - ErrInvalidGraph  if graph is nil, directed, unweighted, or carries
//     any per-edge directed override (graph.HasDirectedEdges()).
//   - ErrDisconnected  if the graph has no vertices, or has more than one
//     vertex but isn't fully connected (no spanning tree exists).
package prim_kruskal
