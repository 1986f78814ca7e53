package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fibheap"
	"github.com/katalvlaran/fibheap/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable
//     or beyond MaxDistance).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  non-nil if inputs are invalid or a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Every vertex enters the queue at most once; a shorter path found later
// lowers its key in place with DecreaseKey instead of pushing a duplicate.
//
// Complexity:
//
//   - Time:  O(E + V log V) amortized
//   - Space: O(V)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Pre-scan all edges to fail fast on negative weights
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Prepare state and run
	r := newRunner(g, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	cfg.Logger.Debug().
		Str("source", cfg.Source).
		Int("settled", r.settledCount).
		Int("inserts", r.inserts).
		Int("decreases", r.decreases).
		Msg("dijkstra: done")

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	settled map[string]bool

	// pq orders frontier vertices by tentative distance; handles keeps the
	// element of every vertex currently queued so its key can be lowered.
	pq      *fibheap.Heap[int64, string]
	handles map[string]*fibheap.Element[int64, string]

	settledCount, inserts, decreases int
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, n),
		settled: make(map[string]bool, n),
		pq:      fibheap.NewOrdered[int64, string](fibheap.WithLogger(cfg.Logger)),
		handles: make(map[string]*fibheap.Element[int64, string], n),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, n)
	}

	return r
}

// init sets every distance to +∞ and enqueues the source at 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
	r.handles[r.options.Source] = r.pq.Insert(0, r.options.Source)
	r.inserts++
}

// process settles vertices in order of increasing distance until the queue
// drains. Vertices beyond MaxDistance never enter the queue.
func (r *runner) process() error {
	for !r.pq.Empty() {
		top, err := r.pq.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		u := top.Payload()
		delete(r.handles, u)
		r.settled[u] = true
		r.settledCount++

		if err = r.relax(u, top.Key()); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the tentative distance of every unsettled neighbor of u.
// du is the final distance of u.
func (r *runner) relax(u string, du int64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v, w := e.To, e.Weight
		if r.settled[v] || w >= r.options.InfEdgeThreshold {
			continue
		}
		// guard against int64 overflow on huge weights
		if w > math.MaxInt64-du {
			continue
		}
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}

		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}

		if h, ok := r.handles[v]; ok {
			if err = r.pq.DecreaseKey(h, nd); err != nil {
				return fmt.Errorf("dijkstra: lowering %q: %w", v, err)
			}
			r.decreases++
			continue
		}
		r.handles[v] = r.pq.Insert(nd, v)
		r.inserts++
	}

	return nil
}
