// Package prim_kruskal computes the minimum spanning forest of a confusion
// graph: within one connected component of confusable characters, it picks
// the cheapest subset of edges that still connects every character,
// collapsing redundant high-distance confusion links.
package prim_kruskal

import (
	"errors"
)

// ErrInvalidGraph indicates that Kruskal requires an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| == 0, or when
// |V| > 1 but MST is impossible.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")
