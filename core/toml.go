package core

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// graphDocument is the TOML shape accepted by DecodeTOML.
type graphDocument struct {
	Directed   bool           `toml:"directed"`
	Weighted   bool           `toml:"weighted"`
	Loops      bool           `toml:"loops"`
	MultiEdges bool           `toml:"multi_edges"`
	Vertices   []string       `toml:"vertices"`
	Edges      []edgeDocument `toml:"edges"`
}

type edgeDocument struct {
	From   string `toml:"from"`
	To     string `toml:"to"`
	Weight int64  `toml:"weight"`
}

// DecodeTOML reads a graph document and builds the Graph it describes.
// Vertices listed under "vertices" are added first (isolated vertices need
// this), then every [[edges]] entry in order, so edge IDs follow the document.
//
// Unknown keys, as well as any error AddVertex/AddEdge would return, are
// reported wrapped in ErrBadDocument.
func DecodeTOML(r io.Reader) (*Graph, error) {
	var doc graphDocument
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrBadDocument, undecoded)
	}

	opts := []GraphOption{WithDirected(doc.Directed)}
	if doc.Weighted {
		opts = append(opts, WithWeighted())
	}
	if doc.Loops {
		opts = append(opts, WithLoops())
	}
	if doc.MultiEdges {
		opts = append(opts, WithMultiEdges())
	}
	g := NewGraph(opts...)

	for _, id := range doc.Vertices {
		if err = g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %w", ErrBadDocument, id, err)
		}
	}
	for i, e := range doc.Edges {
		if _, err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge #%d %s→%s: %w", ErrBadDocument, i+1, e.From, e.To, err)
		}
	}

	return g, nil
}
