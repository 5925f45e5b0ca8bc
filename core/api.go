// File: api.go
// Role: Thin, deterministic public facade exposing read-only configuration
// getters. No algorithms or hidden state here; every accessor just surfaces
// one of Graph's construction-time flags under its read lock.
//
// confusion.Cluster relies on these indirectly: core.UnweightedView and
// core.InducedSubgraph (view.go) read Directed/Weighted/Looped/Multigraph/
// MixedEdges to preserve a cloned view's flags, and dfs.DetectCycles reads
// Directed/Looped to decide whether a given cycle is meaningful.

package core

// Weighted reports whether the graph treats edge weights as meaningful.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether new edges default to directed. Confusion graphs
// are always undirected (confusability is symmetric), so this is false for
// every graph confusion.BuildGraph constructs.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether the graph's edges could be looped.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether this Graph permits parallel edges (multi-edges).
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether this Graph permits per-edge directedness overrides.
// Complexity: O(1).
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}
