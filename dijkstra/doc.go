// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// core.Graph values with non-negative edge weights, driven by a Fibonacci heap.
//
// Overview:
//
//   - Each vertex is inserted into the heap once, the first time it is reached.
//   - Later improvements call DecreaseKey on the vertex's handle (O(1) amortized)
//     rather than pushing stale duplicates, so the queue never exceeds V entries.
//   - Supports optional path reconstruction, distance caps and "impassable"
//     edge thresholds.
//
// Complexity:
//
//   - Time:  O(E + V log V) amortized
//   - V ExtractMin calls at O(log V) amortized each.
//   - Up to E DecreaseKey/Insert calls at O(1) amortized each.
//   - Space: O(V) for distances, predecessors, handles and the heap.
//
// Options:
//
//   - Source(string):              required, the starting vertex ID.
//   - WithReturnPath():            return a predecessor map; otherwise prev == nil.
//   - WithMaxDistance(int64):      leave vertices farther than the cap at math.MaxInt64.
//   - WithInfEdgeThreshold(int64): skip any edge whose weight ≥ threshold.
//   - WithLogger(zerolog.Logger):  debug-level run statistics (and heap consolidation events).
//
// Errors (sentinel):
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound,
//     ErrNegativeWeight (wrapped with the offending edge).
//   - ErrBadMaxDistance, ErrBadInfThreshold are raised via panic by the
//     option constructors.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Distance to B: %d, parent: %s\n", dist["B"], prev["B"])
//
// Dijkstra does not lock the graph for the whole run; do not mutate g concurrently.
package dijkstra
