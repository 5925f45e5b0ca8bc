// Package bfs provides a production-grade breadth-first search over a
// core.Graph. confusion.Cluster uses it to enumerate a confusion graph's
// connected components: each vertex is a character code point, and
// confusability edges having been stripped of weight by
// core.UnweightedView, BFS's reachability sweep directly yields the set of
// characters reachable from one another via some chain of confusable pairs.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Respects directed, undirected, and mixed-direction graphs.
//
// confusion.Cluster itself calls BFS with no options — every hook,
// WithMaxDepth, and WithFilterNeighbor exists for direct callers that need
// finer control than "give me this component."
//
// Determinism
//
//	Because core.NeighborIDs returns neighbor IDs sorted lexicographically,
//	and BFS enqueues neighbors in that order, the visit sequence is fully
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	// As confusion.Cluster calls it, over an unweighted view:
//	result, err := bfs.BFS(core.UnweightedView(g), "U+0041")
//
//	// With functional options:
//	result, err := bfs.BFS(
//	    g, "U+0041",
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "U+0030" }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook before a vertex is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a vertex.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrWeightedGraph        if run on a weighted graph.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
