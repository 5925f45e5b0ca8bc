package confusion

import "errors"

// ErrNilGraph is returned when a nil *core.Graph is passed to Cluster
// or ShortestConfusionPath.
var ErrNilGraph = errors.New("confusion: graph is nil")

// ErrNoSuchVertex is returned when ShortestConfusionPath is given a
// vertex ID absent from the graph.
var ErrNoSuchVertex = errors.New("confusion: vertex not found")

// ErrNoPath is returned when two vertices exist but no path connects
// them (they lie in different confusion components).
var ErrNoPath = errors.New("confusion: no path between vertices")

// ErrUnexpectedCycle is returned if the pruned confusion forest is
// found to contain a cycle; this would indicate a bug in the pruning
// step, since a forest built from per-component spanning trees must
// be acyclic.
var ErrUnexpectedCycle = errors.New("confusion: pruned forest contains a cycle")
