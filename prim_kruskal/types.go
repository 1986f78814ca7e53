package prim_kruskal

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/fibheap/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted, and by Compute for an unknown method.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that no spanning tree covers every vertex:
// the graph is empty, or |V| > 1 and it is not connected.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a Fibonacci heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (drain all edges by weight into union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run.
//
// Fields:
//
//	Method string        : one of MethodPrim or MethodKruskal.
//	Root   string        : start vertex ID for Prim; ignored by Kruskal.
//	Logger zerolog.Logger: receives per-run statistics at debug level.
type MSTOptions struct {
	Method string
	Root   string
	Logger zerolog.Logger
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithLogger attaches l to the run and to the heap it drives.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *MSTOptions) {
		opts.Logger = l
	}
}

// DefaultOptions returns MSTOptions for Kruskal with a no-op logger.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
		Logger: zerolog.Nop(),
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, opts.Root).
//	– otherwise:     ErrInvalidGraph.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph, WithLogger(opts.Logger))
	case MethodPrim:
		return Prim(graph, opts.Root, WithLogger(opts.Logger))
	default:
		return nil, 0, ErrInvalidGraph
	}
}

// validGraph reports whether graph can carry an MST.
func validGraph(graph *core.Graph) bool {
	return graph != nil && graph.Weighted() && !graph.Directed()
}
