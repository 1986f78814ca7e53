package fibheap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireConsistent walks the whole forest and checks every structural
// invariant: closed sibling rings, parent back-links, exact degrees, heap
// order, unmarked roots, element back-links, a correct min and an exact size.
func requireConsistent[K, V any](t testing.TB, h *Heap[K, V]) {
	t.Helper()
	if h.size == 0 {
		require.Nil(t, h.min, "empty heap must have no min")
		return
	}
	require.NotNil(t, h.min, "non-empty heap must have a min")
	require.Nil(t, h.min.parent, "min must be a root")

	count := requireRing(t, h, h.min, nil)
	require.Equal(t, h.size, count, "size must equal node count")
}

func requireRing[K, V any](t testing.TB, h *Heap[K, V], head, parent *node[K, V]) int {
	t.Helper()
	count := 0
	n := head
	for {
		require.True(t, n.right.left == n, "right.left must point back")
		require.True(t, n.left.right == n, "left.right must point back")
		require.True(t, n.parent == parent, "parent back-link broken")
		require.True(t, n.elem.node == n, "element back-link broken")
		require.False(t, h.less(n.elem.key, h.min.elem.key), "min is not minimal")
		if parent == nil {
			require.False(t, n.marked, "roots are never marked")
		} else {
			require.False(t, h.less(n.elem.key, parent.elem.key), "heap order violated")
		}

		children := 0
		if n.child != nil {
			children = ringLen(n.child)
			count += requireRing(t, h, n.child, n)
		}
		require.Equal(t, n.degree, children, "degree must equal child count")

		count++
		n = n.right
		if n == head {
			break
		}
	}

	return count
}

func ringLen[K, V any](head *node[K, V]) int {
	c := 0
	for n := head; ; {
		c++
		n = n.right
		if n == head {
			return c
		}
	}
}

// eachNode calls fn for every node of the forest.
func eachNode[K, V any](h *Heap[K, V], fn func(*node[K, V])) {
	if h.min == nil {
		return
	}
	stack := []*node[K, V]{h.min}
	for len(stack) > 0 {
		head := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for n := head; ; {
			fn(n)
			if n.child != nil {
				stack = append(stack, n.child)
			}
			n = n.right
			if n == head {
				break
			}
		}
	}
}

// requireDegreeBound checks that no node exceeds floor(log_phi(size)) children.
func requireDegreeBound[K, V any](t testing.TB, h *Heap[K, V]) {
	t.Helper()
	bound := maxDegree(h.size)
	eachNode(h, func(n *node[K, V]) {
		require.LessOrEqual(t, n.degree, bound, "degree bound exceeded")
	})
}

// requireBinomial checks that every tree is binomial: the children of a
// degree-k node have degrees exactly {0, 1, ..., k-1}.
func requireBinomial[K, V any](t testing.TB, h *Heap[K, V]) {
	t.Helper()
	eachNode(h, func(n *node[K, V]) {
		seen := make([]bool, n.degree)
		if n.child == nil {
			require.Zero(t, n.degree)
			return
		}
		for c := n.child; ; {
			require.Less(t, c.degree, n.degree, "child degree out of range")
			require.False(t, seen[c.degree], "duplicate child degree %d", c.degree)
			seen[c.degree] = true
			c = c.right
			if c == n.child {
				break
			}
		}
	})
}

// requireSameShape checks that two forests have identical shape, ring order,
// keys, payloads, degrees and marks, starting from their mins.
func requireSameShape[K, V any](t testing.TB, a, b *Heap[K, V]) {
	t.Helper()
	require.Equal(t, a.size, b.size)
	if a.min == nil || b.min == nil {
		require.True(t, a.min == nil && b.min == nil, "only one forest is empty")
		return
	}
	requireSameRing(t, a.min, b.min)
}

func requireSameRing[K, V any](t testing.TB, x, y *node[K, V]) {
	t.Helper()
	hx, hy := x, y
	for {
		require.False(t, x == y, "copies must not share nodes")
		require.False(t, x.elem == y.elem, "copies must not share elements")
		require.Equal(t, x.elem.key, y.elem.key)
		require.Equal(t, x.elem.payload, y.elem.payload)
		require.Equal(t, x.degree, y.degree)
		require.Equal(t, x.marked, y.marked)
		require.Equal(t, x.child == nil, y.child == nil)
		if x.child != nil {
			requireSameRing(t, x.child, y.child)
		}
		x, y = x.right, y.right
		require.Equal(t, x == hx, y == hy, "ring lengths differ")
		if x == hx {
			return
		}
	}
}

// childOfDegree returns the child of n with degree d, or nil.
func childOfDegree[K, V any](n *node[K, V], d int) *node[K, V] {
	if n.child == nil {
		return nil
	}
	for c := n.child; ; {
		if c.degree == d {
			return c
		}
		c = c.right
		if c == n.child {
			return nil
		}
	}
}
