package core

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Directed reports whether edges of g are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether g accepts non-zero weights.
func (g *Graph) Weighted() bool { return g.weighted }

// AddVertex inserts a vertex with the given ID. Adding an existing ID is a no-op.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = nil
}

// HasVertex reports whether the graph contains a vertex with the given ID.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge creates an edge from→to with the given weight and returns its ID.
// Missing endpoints are added automatically. In undirected graphs a mirror
// edge sharing the same ID is stored under to.
//
// Errors (checked before any mutation):
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrBadWeight if weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if from→to already exists and multi-edges are disabled.
//
// Complexity: O(1), or O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextEdgeID++
	e := &Edge{ID: fmt.Sprintf("e%d", g.nextEdgeID), From: from, To: to, Weight: weight}
	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], e)

	// undirected: mirror under the far endpoint (a loop is stored once)
	if !g.directed && from != to {
		mirror := &Edge{ID: e.ID, From: to, To: from, Weight: weight}
		g.adjacency[to] = append(g.adjacency[to], mirror)
	}

	return e.ID, nil
}

// HasEdge reports whether at least one edge leads from→to (in either
// direction for undirected graphs).
// Complexity: O(deg(from))
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	_, ok := lo.Find(g.adjacency[from], func(e *Edge) bool { return e.To == to })

	return ok
}

// Neighbors returns the edges leaving id, each with From == id, in insertion order.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return slices.Clone(g.adjacency[id]), nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V·log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := lo.Keys(g.vertices)
	slices.Sort(ids)

	return ids
}

// Edges returns every edge once, in insertion order. Undirected edges appear
// in the orientation they were added with.
// Complexity: O(E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.edges)
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|, counting each undirected edge once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
