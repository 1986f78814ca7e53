// Package prim_kruskal computes Minimum Spanning Trees (MST) of undirected,
// weighted *core.Graph values with Prim's and Kruskal's algorithms, both
// driven by the Fibonacci heap from the root package.
//
// What & Why
//
//   - Given an undirected, connected, weighted graph G = (V, E), an MST is a subset
//     T ⊆ E that connects every vertex in V with minimum total weight.
//   - Typical uses: cost-efficient network design, single-linkage clustering
//     (cut the heaviest tree edges), and approximation subroutines.
//
// Algorithms Provided
//
//   - Prim(g, root, opts...) ([]core.Edge, int64, error)
//     Grows one tree from root. Each outside vertex is queued once, keyed by its
//     lightest known connecting edge, and lowered in place with DecreaseKey.
//     Time O(E + V log V) amortized, space O(V).
//
//   - Kruskal(g, opts...) ([]core.Edge, int64, error)
//     Loads every non-loop edge with fibheap.NewFrom in O(E), then drains with
//     ExtractMin into a disjoint-set until |V|-1 edges are accepted. Equal weights
//     drain in graph.Edges() order. Time O(E + k log E) for k drained edges,
//     space O(V + E).
//
//   - Compute(g, MSTOptions) dispatches on MSTOptions.Method.
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil, directed or unweighted; unknown Compute method.
//   - ErrEmptyRoot (Prim only): root == "".
//   - core.ErrVertexNotFound (Prim only): root is not in the graph.
//   - ErrDisconnected: |V| == 0, or the graph has more than one component.
//
// Both algorithms log a one-line summary at debug level when given WithLogger.
package prim_kruskal
