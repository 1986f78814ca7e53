package prim_kruskal_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fibheap/core"
	"github.com/katalvlaran/fibheap/prim_kruskal"
)

func printTree(edges []core.Edge, total int64) {
	names := make([]string, len(edges))
	for i, e := range edges {
		names[i] = e.From + "-" + e.To
	}
	fmt.Printf("Total: %d, Edges: %s\n", total, strings.Join(names, " "))
}

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle.
// The MST is {A–B, B–C} with total weight 3.
func ExampleKruskal() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 4)

	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printTree(edges, total)
	// Output: Total: 3, Edges: A-B B-C
}

// ExampleKruskal_envelope runs Kruskal on a 4-vertex "letter envelope":
//
//	A—B (4), A—C (1), C—B (2), B—D (3), C—D (5), D—A (4).
func ExampleKruskal_envelope() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", 2)
	_, _ = g.AddEdge("B", "D", 3)
	_, _ = g.AddEdge("C", "D", 5)
	_, _ = g.AddEdge("D", "A", 4)

	edges, total, _ := prim_kruskal.Kruskal(g)
	printTree(edges, total)
	// Output: Total: 6, Edges: A-C C-B B-D
}

// ExamplePrim runs Prim on a pentagon. E is first queued at 12 through A and
// later lowered to 5 through D.
func ExamplePrim() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "E", 12)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "D", 3)
	_, _ = g.AddEdge("D", "E", 5)

	edges, total, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printTree(edges, total)
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

// ExamplePrim_largeGraph grows a tree over seven vertices; edges are listed
// in the order their far endpoint joined the tree.
//
//	B—C (1), D—E (1), A—B (2), E—G (2), F—G (3),
//	A—C (3), B—D (4), C—E (5), E—F (6), D—F (7).
func ExamplePrim_largeGraph() {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		U, V string
		W    int64
	}{
		{"A", "B", 2}, {"B", "C", 1}, {"D", "E", 1}, {"E", "G", 2}, {"F", "G", 3},
		{"A", "C", 3}, {"B", "D", 4}, {"C", "E", 5}, {"E", "F", 6}, {"D", "F", 7},
	} {
		_, _ = g.AddEdge(e.U, e.V, e.W)
	}

	edges, total, _ := prim_kruskal.Prim(g, "A")
	printTree(edges, total)
	// Output: Total: 13, Edges: A-B B-C B-D D-E E-G G-F
}

// ExampleCompute dispatches by method name.
func ExampleCompute() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("X", "Y", 3)
	_, _ = g.AddEdge("Y", "Z", 1)

	_, total, _ := prim_kruskal.Compute(g, prim_kruskal.NewOptions(
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot("Z"),
	))
	fmt.Println(total)
	// Output: 4
}

func ExamplePrim_disconnected() {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := prim_kruskal.Prim(g, "A")
	fmt.Println(err)
	// Output: prim_kruskal: graph is disconnected
}
