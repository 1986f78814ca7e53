// Package core provides the small, thread-safe weighted Graph consumed by the
// shortest-path and spanning-tree packages of this module.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Sequential Edge.ID generation (“e1”, “e2”, …)
//   - A single sync.RWMutex: mutations lock, queries read-lock
//
// Deterministic iteration:
//
//	Vertices() is sorted by ID; Edges() and Neighbors() follow insertion order.
//	Algorithms built on the graph therefore see the same sequence on every run.
//
// Core Methods:
//
//	AddVertex(id string) error                                  // O(1)
//	AddEdge(from, to string, weight int64) (string, error)      // O(1)†
//	HasVertex(id string) bool                                   // O(1)
//	HasEdge(from, to string) bool                               // O(deg(from))
//	Neighbors(id string) ([]*Edge, error)                       // O(deg(id))
//	Vertices() []string                                         // O(V·log V)
//	Edges() []*Edge                                             // O(E)
//	VertexCount(), EdgeCount() int                              // O(1)
//
//	† O(deg(from)) when multi-edges are disabled (duplicate check).
//
// Neighbors is oriented: every returned edge has From == id. In undirected
// graphs the edge stored under the far endpoint is a mirror that shares the
// original's ID, so Edges() lists each undirected edge once.
//
// Graphs can be decoded from TOML documents (DecodeTOML):
//
//	directed = false
//	weighted = true
//	vertices = ["A", "B", "C"]
//
//	[[edges]]
//	from = "A"
//	to = "B"
//	weight = 3
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//	ErrBadDocument         – malformed or unknown fields in a TOML graph document
package core
