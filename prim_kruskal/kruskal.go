package prim_kruskal

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/fibheap"
	"github.com/katalvlaran/fibheap/core"
)

// edgeKey orders edges by weight, then by position in graph.Edges(), so
// equal weights drain in insertion order.
type edgeKey struct {
	weight int64
	seq    int
}

func lessEdgeKey(a, b edgeKey) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}

	return a.seq < b.seq
}

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
//
// All non-loop edges are loaded into a Fibonacci heap in one pass and drained
// with ExtractMin; only the prefix needed to reach |V|-1 tree edges is ever
// sorted. A disjoint-set with path halving and union by rank rejects cycles.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil, directed, or unweighted.
//   - ErrDisconnected : |V| == 0, or |V| > 1 and the graph is not connected.
//
// Complexity: O(E + k·log E) where k ≤ E is the number of edges drained, O(V + E) memory.
func Kruskal(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	// 1. Validate graph shape.
	if !validGraph(graph) {
		return nil, 0, ErrInvalidGraph
	}
	cfg := NewOptions(opts...)

	// 2. Trivial sizes.
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Load every non-loop edge; NewFrom is O(E).
	items := lo.FilterMap(graph.Edges(), func(e *core.Edge, i int) (fibheap.Item[edgeKey, *core.Edge], bool) {
		return fibheap.Item[edgeKey, *core.Edge]{Key: edgeKey{weight: e.Weight, seq: i}, Payload: e}, e.From != e.To
	})
	pq := fibheap.NewFrom(lessEdgeKey, items, fibheap.WithLogger(cfg.Logger))

	// 4. Disjoint-set over vertices.
	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
	}
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// 5. Drain edges lightest first until the tree is complete.
	var (
		numVerts    = len(vertices)
		mst         = make([]core.Edge, 0, numVerts-1)
		totalWeight int64
		drained     int
	)
	for !pq.Empty() && len(mst) < numVerts-1 {
		top, err := pq.ExtractMin()
		if err != nil {
			return nil, 0, err
		}
		drained++
		e := top.Payload()

		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		mst = append(mst, *e)
		totalWeight += e.Weight
	}

	cfg.Logger.Debug().
		Int("edges", len(items)).
		Int("drained", drained).
		Int("tree_edges", len(mst)).
		Msg("prim_kruskal: kruskal done")

	// 6. Fewer than |V|-1 edges means some component was never joined.
	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
