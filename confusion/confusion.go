package confusion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/inkmatch/bfs"
	"github.com/katalvlaran/inkmatch/core"
	"github.com/katalvlaran/inkmatch/dfs"
	"github.com/katalvlaran/inkmatch/dijkstra"
	"github.com/katalvlaran/inkmatch/prim_kruskal"
	"github.com/katalvlaran/inkmatch/recognizer"
)

// weightScale converts a float32 DTW distance into an int64 edge
// weight (core.Edge.Weight is integral): distances are multiplied by
// weightScale and rounded, giving three decimal digits of precision.
const weightScale = 1000.0

// VertexID maps a template's unicode code point to its confusion-graph
// vertex ID.
func VertexID(unicode uint32) string {
	return fmt.Sprintf("U+%04X", unicode)
}

// BuildGraph walks every template r exposes and, for each one, runs
// Recognize against a Character synthesized from that template's own
// stroke data, against every other template (n = NCharacters()). Every
// result strictly under threshold becomes an edge between the two
// templates' vertices in an undirected, weighted graph. Because it
// runs through Recognize, the stroke-count window filter applies here
// exactly as it does to real input: two templates whose stroke counts
// fall outside each other's window are never compared and so can never
// be joined by an edge, regardless of how visually similar they are.
func BuildGraph(r *recognizer.Recognizer, threshold float32) (*core.Graph, error) {
	unicodes, chars, err := r.Templates()
	if err != nil {
		return nil, fmt.Errorf("confusion: reconstructing templates: %w", err)
	}

	g := core.NewGraph(core.WithWeighted())
	for _, u := range unicodes {
		if err := g.AddVertex(VertexID(u)); err != nil {
			return nil, fmt.Errorf("confusion: adding vertex: %w", err)
		}
	}

	n := len(chars)
	for i, c := range chars {
		res := r.Recognize(c, n)
		fromID := VertexID(unicodes[i])

		for k := 0; k < res.Size(); k++ {
			u := res.Unicode(k)
			if u == unicodes[i] {
				continue // a template is never confusable with itself
			}
			d := res.Distance(k)
			if d >= threshold {
				continue
			}

			toID := VertexID(u)
			if g.HasEdge(fromID, toID) {
				continue // already recorded from the other endpoint's scan
			}
			weight := int64(math.Round(float64(d) * weightScale))
			if _, err := g.AddEdge(fromID, toID, weight); err != nil {
				return nil, fmt.Errorf("confusion: adding edge: %w", err)
			}
		}
	}

	return g, nil
}

// Cluster groups a confusion graph's vertices by: computing connected
// components, building each component's minimum spanning tree,
// pruning MST edges heavier than the graph's mean edge weight, and
// re-deriving components of the pruned forest. Singleton components
// pass through unchanged.
//
// BFS (used for component discovery) requires an unweighted graph and
// Kruskal requires a connected one, so components are computed first
// over core.UnweightedView(g), and Kruskal runs per-component over
// core.InducedSubgraph(g, keep), which is connected by construction.
func Cluster(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	components := connectedComponents(core.UnweightedView(g))
	meanWeight := meanEdgeWeight(g)

	var clusters [][]string
	for _, comp := range components {
		if len(comp) < 2 {
			clusters = append(clusters, comp)
			continue
		}

		keep := make(map[string]bool, len(comp))
		for _, v := range comp {
			keep[v] = true
		}
		sub := core.InducedSubgraph(g, keep)

		mst, _, err := prim_kruskal.Kruskal(sub)
		if err != nil {
			return nil, fmt.Errorf("confusion: MST over component: %w", err)
		}

		forest := core.NewGraph(core.WithWeighted())
		for _, v := range comp {
			if err := forest.AddVertex(v); err != nil {
				return nil, fmt.Errorf("confusion: building pruned forest: %w", err)
			}
		}
		for _, e := range mst {
			if e.Weight > meanWeight {
				continue
			}
			if _, err := forest.AddEdge(e.From, e.To, e.Weight); err != nil {
				return nil, fmt.Errorf("confusion: building pruned forest: %w", err)
			}
		}

		hasCycle, _, err := dfs.DetectCycles(forest)
		if err != nil {
			return nil, fmt.Errorf("confusion: checking pruned forest: %w", err)
		}
		if hasCycle {
			return nil, ErrUnexpectedCycle
		}

		clusters = append(clusters, connectedComponents(core.UnweightedView(forest))...)
	}

	return clusters, nil
}

// connectedComponents returns g's connected components as vertex-ID
// slices, discovered by repeated BFS seeded from the lexicographically
// smallest unvisited vertex. g must already be unweighted.
func connectedComponents(g *core.Graph) [][]string {
	visited := make(map[string]bool)
	var comps [][]string

	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		res, err := bfs.BFS(g, v)
		if err != nil {
			continue // g is unweighted by construction; BFS cannot fail here.
		}
		for _, id := range res.Order {
			visited[id] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// meanEdgeWeight returns the integer-truncated mean weight across all
// of g's edges, or 0 if g has none.
func meanEdgeWeight(g *core.Graph) int64 {
	edges := g.Edges()
	if len(edges) == 0 {
		return 0
	}
	var sum int64
	for _, e := range edges {
		sum += e.Weight
	}

	return sum / int64(len(edges))
}

// ShortestConfusionPath returns the cheapest chain of pairwise
// confusions from one vertex ID to another, via Dijkstra's algorithm.
// from and to are confusion-graph vertex IDs (see VertexID).
func ShortestConfusionPath(g *core.Graph, from, to string) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return nil, ErrNoSuchVertex
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(from), dijkstra.WithReturnPath())
	if err != nil {
		return nil, fmt.Errorf("confusion: %w", err)
	}
	if dist[to] == math.MaxInt64 {
		return nil, ErrNoPath
	}

	path := []string{to}
	for cur := to; cur != from; {
		p, ok := prev[cur]
		if !ok || p == "" {
			return nil, ErrNoPath
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
