package prim_kruskal

import (
	"github.com/katalvlaran/fibheap"
	"github.com/katalvlaran/fibheap/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from root.
//
// Every vertex outside the tree sits in a Fibonacci heap at most once, keyed by
// the lightest edge connecting it to the tree found so far. Attaching a vertex
// relaxes its neighbors with DecreaseKey. Edges are returned in the order
// vertices join the tree, each oriented tree→new vertex.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil, directed, or unweighted.
//   - ErrDisconnected       : |V| == 0, or the tree cannot reach every vertex.
//   - core.ErrVertexNotFound: root is absent (including a single-vertex graph with another ID).
//   - ErrEmptyRoot          : root is empty.
//
// Complexity: O(E + V log V) amortized time, O(V) memory.
func Prim(graph *core.Graph, root string, opts ...Option) ([]core.Edge, int64, error) {
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
		if vertices[0] != root {
			return nil, 0, core.ErrVertexNotFound
		}

		return []core.Edge{}, 0, nil
	}

	// 3. Validate root.
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	// 4. Initialize: the root enters with key 0 and no connecting edge.
	n := len(vertices)
	var (
		inTree      = make(map[string]bool, n)
		best        = make(map[string]*core.Edge, n) // lightest known edge into v
		handles     = make(map[string]*fibheap.Element[int64, string], n)
		pq          = fibheap.NewOrdered[int64, string](fibheap.WithLogger(cfg.Logger))
		mst         = make([]core.Edge, 0, n-1)
		totalWeight int64
		decreases   int
	)
	handles[root] = pq.Insert(0, root)

	// 5. Main loop: attach the closest outside vertex, then relax its neighbors.
	for !pq.Empty() {
		top, err := pq.ExtractMin()
		if err != nil {
			return nil, 0, err
		}
		u := top.Payload()
		delete(handles, u)
		inTree[u] = true
		if e := best[u]; e != nil {
			mst = append(mst, *e)
			totalWeight += e.Weight
		}

		neighbors, err := graph.Neighbors(u)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range neighbors {
			v := e.To
			if inTree[v] {
				continue
			}
			h, queued := handles[v]
			if !queued {
				best[v] = e
				handles[v] = pq.Insert(e.Weight, v)
				continue
			}
			if e.Weight < h.Key() {
				if err = pq.DecreaseKey(h, e.Weight); err != nil {
					return nil, 0, err
				}
				best[v] = e
				decreases++
			}
		}
	}

	cfg.Logger.Debug().
		Str("root", root).
		Int("tree_edges", len(mst)).
		Int("decreases", decreases).
		Msg("prim_kruskal: prim done")

	// 6. Any vertex left outside the tree means the graph is disconnected.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
