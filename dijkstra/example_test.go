package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/fibheap/core"
	"github.com/katalvlaran/fibheap/dijkstra"
)

// ExampleDijkstra computes distances on a triangle: A→C is cheaper via B.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleWithReturnPath reconstructs a path on a directed graph. B is first
// queued at 3 via A and later lowered to 2 via C; D is lowered from 6 to 5.
func ExampleWithReturnPath() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 3)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", 1)
	_, _ = g.AddEdge("B", "D", 3)
	_, _ = g.AddEdge("C", "D", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var hops []string
	for v := "D"; v != ""; v = prev[v] {
		hops = append([]string{v}, hops...)
	}
	fmt.Printf("dist[D]=%d path=%v\n", dist["D"], hops)
	// Output: dist[D]=5 path=[A C B D]
}

// ExampleWithInfEdgeThreshold treats the heavy A—C edge as a wall.
func ExampleWithInfEdgeThreshold() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 4)
	_, _ = g.AddEdge("A", "C", 10)

	dist, _, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(5))
	fmt.Printf("dist[C]=%d\n", dist["C"])
	// Output: dist[C]=6
}
