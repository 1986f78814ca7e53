package fibheap

import "math"

// phi is the golden ratio. A root of degree d spans at least F(d+2) ≥ phi^d
// nodes, so no degree in a heap of n elements exceeds floor(log_phi(n)).
var phi = (1 + math.Sqrt(5)) / 2

// maxDegree returns floor(log_phi(n)), the degree bound for a heap of n elements.
func maxDegree(n int) int {
	if n < 2 {
		return 0
	}

	return int(math.Floor(math.Log(float64(n)) / math.Log(phi)))
}

// consolidate rebuilds the root ring after z, the old minimum, has been
// extracted. z is still in the root ring and serves as the walk sentinel; its
// children must already have been promoted.
//
// Each root is visited once. Roots of equal degree are linked, the larger key
// becoming the child; on equal keys the root parked earlier keeps the parent
// role. The surviving roots are strung back together in ascending degree
// order and the new minimum is the first smallest key met.
func (h *Heap[K, V]) consolidate(z *node[K, V]) {
	table := make([]*node[K, V], maxDegree(h.size)+1)
	walked, links := 0, 0

	for p := z.right; p != z; {
		q := p
		// linking rewrites q's siblings, step first
		p = p.right
		walked++

		for {
			for q.degree >= len(table) {
				table = append(table, nil)
			}
			other := table[q.degree]
			if other == nil {
				break
			}
			table[q.degree] = nil
			parent, child := other, q
			if h.less(q.elem.key, other.elem.key) {
				parent, child = q, other
			}
			child.left, child.right = child, child
			link(parent, child)
			links++
			q = parent
		}
		table[q.degree] = q
	}

	h.min = nil
	roots := 0
	for _, r := range table {
		if r == nil {
			continue
		}
		r.left, r.right = r, r
		h.addRoot(r)
		roots++
	}

	if ev := h.log.Debug(); ev.Enabled() {
		ev.Int("size", h.size-1).
			Int("walked", walked).
			Int("links", links).
			Int("roots", roots).
			Msg("fibheap: consolidated")
	}
}
